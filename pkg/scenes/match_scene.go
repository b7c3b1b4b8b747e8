package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/decker502/memoris/pkg/config"
	"github.com/decker502/memoris/pkg/logger"
	"github.com/decker502/memoris/pkg/match"
	"github.com/decker502/memoris/pkg/render/ebitencanvas"
	"github.com/decker502/memoris/pkg/snowfall"
	"github.com/decker502/memoris/pkg/sound"
	"github.com/decker502/memoris/pkg/ui"
	"github.com/decker502/memoris/pkg/utils"
)

var (
	tableColor      = color.RGBA{R: 41, G: 50, B: 65, A: 255}
	hudTextColor    = color.RGBA{R: 240, G: 240, B: 255, A: 255}
	hudHintColor    = color.RGBA{R: 170, G: 180, B: 200, A: 255}
	cardBorderColor = color.RGBA{R: 255, G: 255, B: 255, A: 220}
	cardTextColor   = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	dialogColor     = color.RGBA{R: 250, G: 250, B: 252, A: 255}
	dialogTextColor = color.RGBA{R: 40, G: 40, B: 60, A: 255}
)

// keyHint 桌面端 HUD 中的按键提示
const keyHint = "R: restart   Tab: snow   M: sound"

// MatchSceneOptions 配对场景参数
type MatchSceneOptions struct {
	Config config.GameConfig
	// Random 洗牌、彩纸和飘雪背景共用的随机源，为 nil 时按时间播种
	Random utils.Random
	// Audio 提示音出口，为 nil 时静音
	Audio sound.Player
	// SnowBackground 是否在牌桌后方显示飘雪
	SnowBackground bool
}

// MatchScene 记忆配对游戏场景
//
// 场景只负责表现：点击转成 Engine.Flip，胜利事件打开弹窗，
// 重新开局通过 Engine.NewGame。所有规则都在 match.Engine 中。
type MatchScene struct {
	engine *match.Engine
	faces  map[string]config.FaceConfig
	colors map[string]color.RGBA
	back   color.RGBA
	grid   utils.BoardGrid

	snow   *snowfall.Simulator
	canvas *ebitencanvas.Canvas

	// 每张牌自上次状态变化以来经过的时间，用于翻牌动画
	animElapsed []float64
	lastStates  []match.CardState

	dialogOpen    bool
	dialogElapsed float64
	okButton      *button
	restartButton *button
	celebration   *Celebration

	titleFont *text.GoTextFace
	labelFont *text.GoTextFace
	hudFont   *text.GoTextFace
	hintFont  *text.GoTextFace

	log zerolog.Logger
}

// NewMatchScene 创建配对场景并开始第一局
func NewMatchScene(opts MatchSceneOptions) *MatchScene {
	rng := opts.Random
	if rng == nil {
		rng = utils.NewRandom(0)
	}
	audio := opts.Audio
	if audio == nil {
		audio = sound.Nop{}
	}
	cfg := opts.Config

	s := &MatchScene{
		faces:       make(map[string]config.FaceConfig, len(cfg.Match.Faces)),
		colors:      make(map[string]color.RGBA, len(cfg.Match.Faces)),
		back:        config.MustColor(cfg.Match.BackColor),
		celebration: NewCelebration(rng, config.GameWindowWidth, config.GameWindowHeight),
		titleFont:   ui.NewFace(44),
		labelFont:   ui.NewFace(30),
		hudFont:     ui.NewFace(28),
		hintFont:    ui.NewFace(18),
		log:         logger.For("MatchScene"),
	}
	for _, f := range cfg.Match.Faces {
		s.faces[f.ID] = f
		s.colors[f.ID] = config.MustColor(f.Color)
	}

	if opts.SnowBackground {
		s.snow = snowfall.New(cfg.Snowfall, rng)
		s.snow.Init(config.GameWindowWidth, config.GameWindowHeight)
		s.canvas = ebitencanvas.New(nil)
	}

	s.restartButton = &button{
		X:      config.GameWindowWidth - config.BoardPadding - config.ButtonWidth,
		Y:      (config.HUDHeight - config.ButtonHeight) / 2,
		Width:  config.ButtonWidth,
		Height: config.ButtonHeight,
		Label:  "Restart",
	}
	s.okButton = &button{
		X:      (config.GameWindowWidth - config.ButtonWidth) / 2,
		Y:      (config.GameWindowHeight+config.DialogHeight)/2 - config.ButtonHeight - 30,
		Width:  config.ButtonWidth,
		Height: config.ButtonHeight,
		Label:  "OK",
	}

	s.engine = match.New(match.Options{
		Faces:       cfg.Match.FaceIDs(),
		RevealDelay: cfg.Match.RevealDelay(),
		Random:      rng,
	})
	s.engine.Subscribe(sound.Listener(audio))
	s.engine.Subscribe(s.onEvent)

	areaX, areaY, areaW, areaH := config.BoardArea()
	s.grid = utils.NewBoardGrid(s.engine.Len(), cfg.Match.Columns,
		cfg.Match.Tile.Width, cfg.Match.Tile.Height, cfg.Match.Tile.Margin,
		areaX, areaY, areaW, areaH)
	s.resetAnimations()

	s.log.Info().
		Str("round", s.engine.RoundID()).
		Int("cards", s.engine.Len()).
		Float64("scale", s.grid.Scale).
		Msg("match scene ready")
	return s
}

// Engine 返回底层引擎
func (s *MatchScene) Engine() *match.Engine {
	return s.engine
}

// onEvent 响应引擎事件，维护弹窗与重开按钮
func (s *MatchScene) onEvent(ev match.Event) {
	switch ev.Type {
	case match.EventVictory:
		s.dialogOpen = true
		s.dialogElapsed = 0
		s.okButton.Visible = true
		s.celebration.Start()
		s.log.Info().Str("round", ev.RoundID).Int("moves", ev.Moves).Msg("victory")
	case match.EventNewGame:
		s.dialogOpen = false
		s.okButton.Visible = false
		s.restartButton.Visible = false
		s.celebration.Stop()
		s.resetAnimations()
	}
}

func (s *MatchScene) resetAnimations() {
	n := s.engine.Len()
	s.animElapsed = make([]float64, n)
	s.lastStates = make([]match.CardState, n)
	for i, c := range s.engine.Cards() {
		s.lastStates[i] = c.State
	}
}

// Update 更新场景
func (s *MatchScene) Update(deltaTime float64) {
	s.update(deltaTime)
	s.handleInput()
}

// update 推进与输入无关的状态
func (s *MatchScene) update(dt float64) {
	s.engine.Update(dt)
	if s.snow != nil {
		s.snow.Tick()
	}
	s.celebration.Update(dt)
	if s.dialogOpen {
		s.dialogElapsed += dt
	}

	for i, c := range s.engine.Cards() {
		if c.State != s.lastStates[i] {
			s.lastStates[i] = c.State
			s.animElapsed[i] = 0
			continue
		}
		s.animElapsed[i] += dt
	}
}

func (s *MatchScene) handleInput() {
	if ui.IsAnyKeyJustPressed(ebiten.KeyR) {
		s.Restart()
		return
	}
	if s.dialogOpen && ui.IsAnyKeyJustPressed(ebiten.KeyEnter, ebiten.KeyEscape, ebiten.KeySpace) {
		s.Acknowledge()
		return
	}
	if pressed, x, y := ui.IsJustTouchedOrClicked(); pressed {
		s.HandleTap(float64(x), float64(y))
	}
}

// HandleTap 处理一次点击或触摸（逻辑屏幕坐标）
//
// 弹窗打开时只响应 OK 按钮；否则依次检查重开按钮和牌桌。
//
// 返回：
//   - bool: 点击是否被处理
func (s *MatchScene) HandleTap(x, y float64) bool {
	if s.dialogOpen {
		if s.okButton.Contains(x, y) {
			s.Acknowledge()
			return true
		}
		return false
	}

	if s.restartButton.Contains(x, y) {
		s.Restart()
		return true
	}

	if index := s.grid.HitTest(x, y); index >= 0 {
		return s.engine.Flip(index)
	}
	return false
}

// Acknowledge 关闭胜利弹窗并显示重开按钮
func (s *MatchScene) Acknowledge() {
	if !s.dialogOpen {
		return
	}
	s.dialogOpen = false
	s.okButton.Visible = false
	s.restartButton.Visible = true
}

// Restart 重新洗牌开局，同时隐藏彩纸与重开按钮
func (s *MatchScene) Restart() {
	s.engine.NewGame()
	s.log.Debug().Str("round", s.engine.RoundID()).Msg("restart")
}

// DialogOpen 胜利弹窗是否打开
func (s *MatchScene) DialogOpen() bool {
	return s.dialogOpen
}

// RestartVisible 重开按钮是否可见
func (s *MatchScene) RestartVisible() bool {
	return s.restartButton.Visible
}

// Draw 绘制场景
func (s *MatchScene) Draw(screen *ebiten.Image) {
	if s.snow != nil {
		s.canvas.Reset(screen)
		s.snow.Render(s.canvas)
	} else {
		screen.Fill(tableColor)
	}

	s.drawHUD(screen)
	for i, c := range s.engine.Cards() {
		s.drawCard(screen, i, c)
	}
	s.celebration.Draw(screen)

	if s.dialogOpen {
		s.drawDialog(screen)
	}
}

func (s *MatchScene) drawHUD(screen *ebiten.Image) {
	status := fmt.Sprintf("Moves: %d   Pairs: %d/%d", s.engine.Moves(), s.engine.MatchedPairs(), len(s.engine.Faces()))
	ui.DrawText(screen, status, s.hudFont, config.BoardPadding+10, config.HUDHeight/2-28, hudTextColor)
	if !utils.IsMobile() {
		ui.DrawText(screen, keyHint, s.hintFont, config.BoardPadding+10, config.HUDHeight/2+12, hudHintColor)
	}

	px, py := ui.GetPointerPosition()
	s.restartButton.Draw(screen, s.labelFont, s.restartButton.Contains(float64(px), float64(py)))
}

// drawCard 绘制一张牌
// 状态变化后的一小段时间内按水平缩放模拟翻转，配对成功的牌淡出后不再绘制
func (s *MatchScene) drawCard(screen *ebiten.Image, index int, c match.Card) {
	x, y, w, h := s.grid.TileRect(index)
	p := utils.Progress(s.animElapsed[index], config.FlipAnimationSeconds)

	alpha := 1.0
	scaleX := utils.EaseOutCubic(p)
	if c.State == match.Matched {
		alpha = 1 - utils.Progress(s.animElapsed[index], config.FlipAnimationSeconds*2)
		if alpha <= 0 {
			return
		}
		scaleX = 1
	}

	dw := w * scaleX
	dx := x + (w-dw)/2
	fx, fy, fw, fh := float32(dx), float32(y), float32(dw), float32(h)

	if c.State == match.FaceDown {
		vector.DrawFilledRect(screen, fx, fy, fw, fh, s.back, true)
		inset := float32(12 * s.grid.Scale)
		if fw > 2*inset {
			vector.StrokeRect(screen, fx+inset, fy+inset, fw-2*inset, fh-2*inset, 3, fade(cardBorderColor, 0.5), true)
		}
		vector.StrokeRect(screen, fx, fy, fw, fh, 2, cardBorderColor, true)
		return
	}

	vector.DrawFilledRect(screen, fx, fy, fw, fh, fade(s.colors[c.Face], alpha), true)
	vector.StrokeRect(screen, fx, fy, fw, fh, 2, fade(cardBorderColor, alpha), true)
	if p >= 1 {
		name := s.faces[c.Face].Name
		if name == "" {
			name = c.Face
		}
		name = ui.TruncateText(name, s.labelFont, w-8)
		ui.DrawCenteredText(screen, name, s.labelFont, x+w/2, y+h/2, fade(cardTextColor, alpha))
	}
}

// 弹窗从 dialogStartScale 放大到原尺寸，背景压暗到 dialogDimAlpha
const (
	dialogStartScale = 0.6
	dialogDimAlpha   = 140
)

// dialogTransition 返回进度 p（0~1）时的背景遮罩透明度与弹窗缩放
func dialogTransition(p float64) (dim uint8, scale float64) {
	dim = uint8(utils.Lerp(0, dialogDimAlpha, utils.EaseInOutCubic(p)))
	scale = utils.Lerp(dialogStartScale, 1, utils.EaseOutBack(p))
	return dim, scale
}

func (s *MatchScene) drawDialog(screen *ebiten.Image) {
	fadeIn := utils.Progress(s.dialogElapsed, config.OverlayFadeSeconds)
	dim, scale := dialogTransition(fadeIn)
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, color.RGBA{A: dim}, false)

	w, h := config.DialogWidth*scale, config.DialogHeight*scale
	x := (config.GameWindowWidth - w) / 2
	y := (config.GameWindowHeight - h) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), dialogColor, true)
	if fadeIn < 1 {
		return
	}

	cx := float64(config.GameWindowWidth) / 2
	ui.DrawCenteredText(screen, "Congratulations!", s.titleFont, cx, y+70, dialogTextColor)
	ui.DrawCenteredText(screen, fmt.Sprintf("You won in %d moves", s.engine.Moves()), s.labelFont, cx, y+140, dialogTextColor)

	px, py := ui.GetPointerPosition()
	s.okButton.Draw(screen, s.labelFont, s.okButton.Contains(float64(px), float64(py)))
}
