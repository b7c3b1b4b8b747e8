package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/memoris/pkg/config"
	"github.com/decker502/memoris/pkg/render"
	"github.com/decker502/memoris/pkg/snowfall"
	"github.com/decker502/memoris/pkg/utils"
)

// snowView 终端飘雪模式
//
// 模拟在 snowfall.Loop 的后台 goroutine 中推进，
// 每帧结束后向屏幕投递一个中断事件，由事件循环重绘。
type snowView struct {
	loop   *snowfall.Loop
	canvas *render.TerminalCanvas
	cols   int
	rows   int
}

func newSnowView(ctx context.Context, screen tcell.Screen, cfg config.SnowfallConfig, rng utils.Random) *snowView {
	canvas := render.NewTerminalCanvas(screen)
	w, h := canvas.Size()

	sim := snowfall.New(scaledForTerminal(cfg), rng)
	sim.Init(w, h)

	v := &snowView{canvas: canvas}
	v.cols, v.rows = screen.Size()
	v.loop = snowfall.NewLoop(sim, cfg.FrameInterval(), func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	v.loop.Start(ctx)
	return v
}

// scaledForTerminal 终端的逻辑像素很粗，缩小雪花与速度以保持观感
func scaledForTerminal(cfg config.SnowfallConfig) config.SnowfallConfig {
	const k = 0.25
	cfg.Radius = config.Range{Min: cfg.Radius.Min * k, Max: cfg.Radius.Max * k}
	cfg.Speed = config.Range{Min: cfg.Speed.Min * k, Max: cfg.Speed.Max * k}
	cfg.Count /= 4
	cfg.DriftWavelength *= k
	return cfg
}

func (v *snowView) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		v.loop.SetPaused(!v.loop.Paused())
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			v.loop.SetPaused(!v.loop.Paused())
		case 'c', 'r':
			v.loop.Reset()
		}
	}
	return true
}

// Tick 为空操作，模拟由后台循环推进
func (v *snowView) Tick(float64) {}

func (v *snowView) Draw(screen tcell.Screen) {
	cols, rows := screen.Size()
	if cols != v.cols || rows != v.rows {
		v.cols, v.rows = cols, rows
		w, h := v.canvas.Size()
		v.loop.Resize(w, h)
	}
	v.loop.Render(v.canvas)

	peak, landings := v.loop.Stats()
	status := "space: pause  c: clear  q: quit"
	if v.loop.Paused() {
		status = "[paused] " + status
	}
	drawString(screen, 0, 0, status, tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack))
	drawString(screen, 0, 1, fmt.Sprintf("peak %.1f  landings %d", peak, landings), tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack))
}

func (v *snowView) Close() {
	v.loop.Stop()
}
