// memoris-tui 在终端中运行记忆配对游戏或飘雪模拟
//
// 用法：
//
//	go run ./cmd/memoris-tui -mode match
//	go run ./cmd/memoris-tui -mode snow --log-file tui.log
//
// 按键：
//
//	方向键 / hjkl  移动光标（配对模式）
//	Enter / 空格   翻牌（配对模式）/ 暂停（飘雪模式）
//	r              重新开始
//	c              清空积雪（飘雪模式）
//	q / Esc        退出
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/decker502/memoris/pkg/config"
	"github.com/decker502/memoris/pkg/logger"
	"github.com/decker502/memoris/pkg/sound"
	"github.com/decker502/memoris/pkg/utils"
)

// cliFlags 命令行参数
type cliFlags struct {
	fs      *flag.FlagSet
	logFile *string
	envFile *string
}

// flagKeys 命令行参数名到启动参数键的映射，只有显式指定的参数才覆盖环境变量与选项文件
var flagKeys = map[string]string{
	"mode":      "scene",
	"seed":      "seed",
	"config":    "game_config",
	"sound":     "sound",
	"log-level": "log_level",
}

func newCLIFlags(fs *flag.FlagSet) *cliFlags {
	fs.String("mode", config.SceneMatch, "Mode: match or snow")
	fs.Uint64("seed", 0, "Random seed (0 = time based)")
	fs.String("config", "", "Game config YAML (default: built-in)")
	fs.Bool("sound", true, "Play synthesized sound cues")
	fs.String("log-level", "info", "Log level: debug, info, warn, error")
	return &cliFlags{
		fs:      fs,
		logFile: fs.String("log-file", "", "Write logs to this file (terminal output is reserved for the UI)"),
		envFile: fs.String("env", ".env", "Env file with MEMORIS_* variables"),
	}
}

// launchSource 把显式指定的参数作为最高优先级覆盖项
func (c *cliFlags) launchSource() config.LaunchSource {
	overrides := map[string]any{}
	c.fs.Visit(func(f *flag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		if g, ok := f.Value.(flag.Getter); ok {
			overrides[key] = g.Get()
		}
	})
	return config.LaunchSource{EnvFile: *c.envFile, Overrides: overrides}
}

// view 终端界面的一种模式
type view interface {
	// Draw 把当前状态绘制到屏幕（不调用 Show）
	Draw(screen tcell.Screen)
	// HandleKey 处理按键，返回 false 表示退出
	HandleKey(ev *tcell.EventKey) bool
	// Tick 推进 dt 秒
	Tick(dt float64)
	// Close 释放后台资源
	Close()
}

func main() {
	cli := newCLIFlags(flag.CommandLine)
	flag.Parse()

	opts, err := config.LoadLaunchOptions(cli.launchSource())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	closeLog := setupLogging(*cli.logFile, opts.LogLevel)
	defer closeLog()

	if err := run(opts); err != nil {
		log.Error().Err(err).Msg("memoris-tui exited with error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging 日志写入文件；未指定文件时丢弃，避免破坏终端画面
func setupLogging(path, level string) func() {
	if path == "" {
		logger.Setup(logger.Options{Verbose: false, Writer: io.Discard})
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open log file %s: %v\n", path, err)
		logger.Setup(logger.Options{Verbose: false})
		return func() {}
	}
	logger.Setup(logger.Options{Level: level, Verbose: true, Writer: f})
	return func() { _ = f.Close() }
}

func run(opts config.LaunchOptions) error {
	cfg, err := loadConfig(opts.GameConfig)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	player := newPlayer(opts.Sound, cfg.Audio)
	if closer, ok := player.(interface{ Close() }); ok {
		defer closer.Close()
	}

	rng := utils.NewRandom(opts.Seed)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var v view
	switch opts.Scene {
	case config.SceneSnow:
		v = newSnowView(ctx, screen, cfg.Snowfall, rng)
	default:
		v = newMatchView(cfg.Match, rng, player)
	}
	defer v.Close()

	log.Info().Str("mode", opts.Scene).Uint64("seed", opts.Seed).Msg("memoris-tui started")
	return eventLoop(screen, v)
}

func loadConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		return config.DefaultGameConfig(), nil
	}
	return config.LoadGameConfig(path)
}

// newPlayer 打开扬声器；失败时静音运行
func newPlayer(enabled bool, cfg config.AudioConfig) sound.Player {
	if !enabled {
		return sound.Nop{}
	}
	p, err := sound.NewSpeakerPlayer(cfg.SampleRate, cfg.Volume)
	if err != nil {
		log.Warn().Err(err).Msg("speaker unavailable, sound disabled")
		return sound.Nop{}
	}
	return p
}
