package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"github.com/decker502/memoris/pkg/config"
	"github.com/decker502/memoris/pkg/logger"
	"github.com/decker502/memoris/pkg/render/ebitencanvas"
	"github.com/decker502/memoris/pkg/snowfall"
	"github.com/decker502/memoris/pkg/ui"
	"github.com/decker502/memoris/pkg/utils"
)

// maxStepsPerUpdate 单次 Update 最多补几帧，避免卡顿后一次性追赶过多
const maxStepsPerUpdate = 4

// SnowScene 全屏飘雪场景
//
// 按配置的帧间隔推进模拟（与 ebiten 的 TPS 解耦），
// Space 暂停/继续，C 清空积雪，D 切换调试信息。
type SnowScene struct {
	sim      *snowfall.Simulator
	canvas   *ebitencanvas.Canvas
	interval float64 // 秒
	acc      float64
	paused   bool
	debug    bool

	log zerolog.Logger
}

// NewSnowScene 创建飘雪场景
func NewSnowScene(cfg config.SnowfallConfig, rng utils.Random) *SnowScene {
	s := &SnowScene{
		sim:      snowfall.New(cfg, rng),
		canvas:   ebitencanvas.New(nil),
		interval: cfg.FrameInterval().Seconds(),
		debug:    true,
		log:      logger.For("SnowScene"),
	}
	s.sim.Init(config.GameWindowWidth, config.GameWindowHeight)
	return s
}

// Simulator 返回底层模拟器
func (s *SnowScene) Simulator() *snowfall.Simulator {
	return s.sim
}

// OnActivate 切回场景时丢弃累积的时间
func (s *SnowScene) OnActivate() {
	s.acc = 0
}

// Update 更新场景
func (s *SnowScene) Update(deltaTime float64) {
	if ui.IsAnyKeyJustPressed(ebiten.KeySpace) {
		s.SetPaused(!s.paused)
	}
	if ui.IsAnyKeyJustPressed(ebiten.KeyC) {
		s.Clear()
	}
	if ui.IsAnyKeyJustPressed(ebiten.KeyD) {
		s.debug = !s.debug
	}
	s.advance(deltaTime)
}

// advance 按帧间隔推进模拟
//
// 返回：
//   - int: 本次执行的 Tick 次数
func (s *SnowScene) advance(dt float64) int {
	if s.paused {
		return 0
	}
	if s.interval <= 0 {
		s.sim.Tick()
		return 1
	}

	s.acc += dt
	steps := 0
	for s.acc >= s.interval && steps < maxStepsPerUpdate {
		s.sim.Tick()
		s.acc -= s.interval
		steps++
	}
	if steps == maxStepsPerUpdate {
		s.acc = 0
	}
	return steps
}

// SetPaused 暂停或继续
func (s *SnowScene) SetPaused(paused bool) {
	s.paused = paused
	s.log.Debug().Bool("paused", paused).Msg("snowfall pause toggled")
}

// Paused 是否暂停
func (s *SnowScene) Paused() bool {
	return s.paused
}

// Clear 清空积雪并重新生成雪花
func (s *SnowScene) Clear() {
	w, h := s.sim.Size()
	s.sim.Init(w, h)
	s.acc = 0
	s.log.Debug().Msg("snowfall cleared")
}

// Draw 绘制场景
func (s *SnowScene) Draw(screen *ebiten.Image) {
	s.canvas.Reset(screen)
	s.sim.Render(s.canvas)

	if !s.debug {
		return
	}
	state := "running"
	if s.paused {
		state = "paused"
	}
	msg := fmt.Sprintf("flakes: %d  peak: %.1f  landings: %d\nTPS: %.0f  %s\nSpace pause  C clear  D debug  Tab switch",
		len(s.sim.Flakes()), s.sim.Peak(), s.sim.Landings(), ebiten.ActualTPS(), state)
	ebitenutil.DebugPrintAt(screen, msg, 10, 10)
}
