// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/decker502/memoris/pkg/config"
	"github.com/decker502/memoris/pkg/embedded"
	"github.com/decker502/memoris/pkg/game"
	"github.com/decker502/memoris/pkg/logger"
	"github.com/decker502/memoris/pkg/scenes"
	"github.com/decker502/memoris/pkg/utils"
)

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	audioManager             *game.AudioManager
	options                  config.LaunchOptions
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数

	log zerolog.Logger
}

// NewApp 创建并初始化游戏应用
//
// 调用前应先完成 logger.Setup；使用内置配置时还需先调用 embedded.Init()。
//
// 参数：
//   - opts: 启动参数
//   - audioContext: ebiten 音频上下文，为 nil 时按配置的采样率创建
//
// 返回：
//   - *App: 应用实例
//   - error: 游戏配置加载失败
func NewApp(opts config.LaunchOptions, audioContext *audio.Context) (*App, error) {
	log := logger.For("App")

	gameConfig, err := LoadGameConfig(opts.GameConfig)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	log.Info().
		Int("faces", len(gameConfig.Match.Faces)).
		Int("flakes", gameConfig.Snowfall.Count).
		Str("source", configSource(opts.GameConfig)).
		Msg("game config loaded")

	// 初始化音频上下文（每个进程只能创建一次）
	if audioContext == nil && opts.Sound {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(gameConfig.Audio.SampleRate)
		}
	}
	audioManager := game.NewAudioManager(audioContext, gameConfig.Audio, opts.Sound)
	audioManager.Preload()

	rng := utils.NewRandom(opts.Seed)

	sceneManager := game.NewSceneManager()
	sceneManager.Register(scenes.SceneMatch, func() game.Scene {
		return scenes.NewMatchScene(scenes.MatchSceneOptions{
			Config:         *gameConfig,
			Random:         rng,
			Audio:          audioManager,
			SnowBackground: opts.SnowBackground,
		})
	})
	sceneManager.Register(scenes.SceneSnow, func() game.Scene {
		return scenes.NewSnowScene(gameConfig.Snowfall, rng)
	})

	if !sceneManager.Load(opts.Scene) {
		return nil, fmt.Errorf("unknown scene %q", opts.Scene)
	}
	log.Info().Str("scene", opts.Scene).Uint64("seed", opts.Seed).Bool("sound", opts.Sound).Msg("app started")

	return &App{
		sceneManager: sceneManager,
		audioManager: audioManager,
		options:      opts,
		log:          log,
	}, nil
}

// LoadGameConfig 加载游戏配置
// path 非空时从磁盘读取；否则读取嵌入的 data/memoris.yaml，未嵌入该文件时使用内置默认值
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	if !embedded.Exists(config.DefaultGameConfigPath) {
		return config.DefaultGameConfig(), nil
	}
	data, err := embedded.ReadFile(config.DefaultGameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("read embedded config: %w", err)
	}
	return config.ParseGameConfig(data)
}

func configSource(path string) string {
	switch {
	case path != "":
		return path
	case embedded.Exists(config.DefaultGameConfigPath):
		return "embedded:" + config.DefaultGameConfigPath
	default:
		return "defaults"
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowSize())
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.log.Debug().Msg("exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// Tab 在配对与飘雪场景之间切换
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		a.sceneManager.Next()
	}

	// M 开关声音
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.audioManager.SetEnabled(!a.audioManager.Enabled())
		a.log.Debug().Bool("sound", a.audioManager.Enabled()).Msg("sound toggled")
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Options 返回启动参数
func (a *App) Options() config.LaunchOptions {
	return a.options
}
