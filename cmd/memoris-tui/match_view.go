package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/decker502/memoris/pkg/config"
	"github.com/decker502/memoris/pkg/logger"
	"github.com/decker502/memoris/pkg/match"
	"github.com/decker502/memoris/pkg/sound"
	"github.com/decker502/memoris/pkg/utils"
)

// 终端中单张牌占用的字符格
const (
	cellW      = 10
	cellH      = 3
	cellMargin = 1
	hudRows    = 2
)

// matchView 终端配对模式
type matchView struct {
	engine *match.Engine
	cfg    config.MatchConfig
	labels map[string]string
	colors map[string]tcell.Color
	back   tcell.Color
	cursor int
	status string
	won    bool

	log zerolog.Logger
}

func newMatchView(cfg config.MatchConfig, rng utils.Random, player sound.Player) *matchView {
	v := &matchView{
		cfg:    cfg,
		labels: make(map[string]string, len(cfg.Faces)),
		colors: make(map[string]tcell.Color, len(cfg.Faces)),
		back:   tcellColor(cfg.BackColor),
		log:    logger.For("MatchView"),
	}
	for _, f := range cfg.Faces {
		name := f.Name
		if name == "" {
			name = f.ID
		}
		v.labels[f.ID] = name
		v.colors[f.ID] = tcellColor(f.Color)
	}

	// 引擎使用自带队列，由 Tick 推进
	v.engine = match.New(match.Options{
		Faces:       cfg.FaceIDs(),
		RevealDelay: cfg.RevealDelay(),
		Random:      rng,
	})
	v.engine.Subscribe(sound.Listener(player))
	v.engine.Subscribe(v.onEvent)
	v.status = "Find all pairs"
	return v
}

func (v *matchView) onEvent(ev match.Event) {
	switch ev.Type {
	case match.EventNewGame:
		v.won = false
		v.status = "Find all pairs"
	case match.EventMatched:
		v.status = fmt.Sprintf("Pair found: %s", v.labels[ev.Face])
	case match.EventMismatched:
		v.status = "No match"
	case match.EventVictory:
		v.won = true
		v.status = fmt.Sprintf("Congratulations! You won in %d moves. Press r to play again", ev.Moves)
		v.log.Info().Str("round", ev.RoundID).Int("moves", ev.Moves).Msg("round won")
	}
}

func (v *matchView) grid(screen tcell.Screen) utils.BoardGrid {
	cols, rows := screen.Size()
	return utils.NewBoardGrid(v.engine.Len(), v.cfg.Columns, cellW, cellH, cellMargin,
		0, hudRows, float64(cols), float64(rows-hudRows))
}

// HandleKey 方向键移动光标，Enter/空格翻牌
func (v *matchView) HandleKey(ev *tcell.EventKey) bool {
	g := utils.NewBoardGrid(v.engine.Len(), v.cfg.Columns, cellW, cellH, cellMargin, 0, 0, 1e6, 1e6)
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		v.cursor = g.Move(v.cursor, -1, 0)
	case tcell.KeyRight:
		v.cursor = g.Move(v.cursor, 1, 0)
	case tcell.KeyUp:
		v.cursor = g.Move(v.cursor, 0, -1)
	case tcell.KeyDown:
		v.cursor = g.Move(v.cursor, 0, 1)
	case tcell.KeyEnter:
		v.engine.Flip(v.cursor)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			v.cursor = g.Move(v.cursor, -1, 0)
		case 'l':
			v.cursor = g.Move(v.cursor, 1, 0)
		case 'k':
			v.cursor = g.Move(v.cursor, 0, -1)
		case 'j':
			v.cursor = g.Move(v.cursor, 0, 1)
		case ' ':
			v.engine.Flip(v.cursor)
		case 'r':
			v.engine.NewGame()
		}
	}
	return true
}

func (v *matchView) Tick(dt float64) {
	v.engine.Update(dt)
}

func (v *matchView) Close() {}

func (v *matchView) Draw(screen tcell.Screen) {
	screen.Clear()
	hud := fmt.Sprintf("Moves: %d  Pairs: %d/%d", v.engine.Moves(), v.engine.MatchedPairs(), v.engine.Len()/2)
	drawString(screen, 1, 0, hud, tcell.StyleDefault.Bold(true))
	statusStyle := tcell.StyleDefault
	if v.won {
		statusStyle = statusStyle.Foreground(tcell.ColorYellow).Bold(true)
	}
	drawString(screen, 1, 1, v.status, statusStyle)

	g := v.grid(screen)
	for i, c := range v.engine.Cards() {
		x, y, w, h := g.TileRect(i)
		v.drawCard(screen, int(x), int(y), max(int(w), 1), max(int(h), 1), c, i == v.cursor)
	}
}

func (v *matchView) drawCard(screen tcell.Screen, x, y, w, h int, c match.Card, selected bool) {
	var style tcell.Style
	label := ""
	switch c.State {
	case match.FaceDown:
		style = tcell.StyleDefault.Background(v.back).Foreground(tcell.ColorWhite)
		label = "?"
	case match.FaceUp:
		style = tcell.StyleDefault.Background(v.colors[c.Face]).Foreground(tcell.ColorBlack)
		label = v.labels[c.Face]
	case match.Matched:
		style = tcell.StyleDefault
	}
	if selected {
		style = style.Reverse(true)
	}

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			screen.SetContent(x+col, y+row, ' ', nil, style)
		}
	}
	if label == "" {
		if selected {
			// 已配对的位置仍显示光标
			drawString(screen, x+w/2, y+h/2, "·", style)
		}
		return
	}
	label = truncate(label, w)
	drawString(screen, x+(w-len([]rune(label)))/2, y+h/2, label, style)
}

// drawString 从 (x, y) 开始逐字符写入
func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:max(width, 0)])
	}
	return strings.TrimSpace(string(r[:width-1])) + "…"
}

func tcellColor(hex string) tcell.Color {
	c, err := config.ParseColor(hex)
	if err != nil {
		return tcell.ColorGray
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
