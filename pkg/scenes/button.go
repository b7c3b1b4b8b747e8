package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/memoris/pkg/ui"
)

var (
	buttonColor       = color.RGBA{R: 238, G: 108, B: 77, A: 255}
	buttonHoverColor  = color.RGBA{R: 250, G: 140, B: 110, A: 255}
	buttonBorderColor = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	buttonTextColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// button 矩形文字按钮
type button struct {
	X, Y          float64
	Width, Height float64
	Label         string
	Visible       bool
}

// Contains 判断点是否落在可见按钮内
func (b *button) Contains(x, y float64) bool {
	return b.Visible && x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Draw 绘制按钮，指针悬停时高亮
func (b *button) Draw(screen *ebiten.Image, font *text.GoTextFace, hovered bool) {
	if !b.Visible {
		return
	}

	fill := buttonColor
	if hovered {
		fill = buttonHoverColor
	}
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height)
	vector.DrawFilledRect(screen, x, y, w, h, fill, true)
	vector.StrokeRect(screen, x, y, w, h, 2, buttonBorderColor, true)

	ui.DrawCenteredText(screen, b.Label, font, b.X+b.Width/2, b.Y+b.Height/2, buttonTextColor)
}
