package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/decker502/memoris/pkg/app"
	"github.com/decker502/memoris/pkg/config"
	"github.com/decker502/memoris/pkg/embedded"
	"github.com/decker502/memoris/pkg/logger"
)

var (
	sceneFlag   = flag.String("scene", config.SceneMatch, "Start scene: match or snow")
	seedFlag    = flag.Uint64("seed", 0, "Random seed (0 = time based)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	levelFlag   = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	soundFlag   = flag.Bool("sound", true, "Enable synthesized sound effects")
	snowFlag    = flag.Bool("snow-background", true, "Show snowfall behind the card table")
	configFlag  = flag.String("config", "", "Game config YAML (default: embedded data/memoris.yaml)")
	optionsFlag = flag.String("options", "", "Launch options YAML file")
	envFileFlag = flag.String("env", ".env", "Env file with MEMORIS_* variables")
)

// flagKeys 命令行参数名到启动参数键的映射
var flagKeys = map[string]string{
	"scene":           "scene",
	"seed":            "seed",
	"verbose":         "verbose",
	"log-level":       "log_level",
	"sound":           "sound",
	"snow-background": "snow_background",
	"config":          "game_config",
}

// explicitOverrides 只收集命令行上显式给出的参数，未给出的交给环境变量和选项文件
func explicitOverrides() map[string]any {
	values := map[string]any{
		"scene":           *sceneFlag,
		"seed":            *seedFlag,
		"verbose":         *verboseFlag,
		"log-level":       *levelFlag,
		"sound":           *soundFlag,
		"snow-background": *snowFlag,
		"config":          *configFlag,
	}
	overrides := make(map[string]any)
	flag.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = values[f.Name]
		}
	})
	return overrides
}

func main() {
	flag.Parse()

	opts, err := config.LoadLaunchOptions(config.LaunchSource{
		EnvFile:     *envFileFlag,
		OptionsFile: *optionsFlag,
		Overrides:   explicitOverrides(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "启动参数无效: %v\n", err)
		os.Exit(2)
	}

	logger.Setup(logger.Options{Level: opts.LogLevel, Verbose: opts.Verbose, Console: true})

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(opts, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("游戏初始化失败")
	}

	ebiten.SetWindowSize(config.WindowSize())
	ebiten.SetWindowTitle("Memoris")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal().Err(err).Msg("game loop exited with error")
	}
}
