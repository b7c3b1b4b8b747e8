package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	faceSourceOnce sync.Once
	faceSource     *text.GoTextFaceSource
	faceSourceErr  error
)

// DefaultFaceSource 返回内置字体源（M+ 1p），首次调用时解析
func DefaultFaceSource() (*text.GoTextFaceSource, error) {
	faceSourceOnce.Do(func() {
		faceSource, faceSourceErr = text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
		if faceSourceErr != nil {
			faceSourceErr = fmt.Errorf("parse builtin font: %w", faceSourceErr)
		}
	})
	return faceSource, faceSourceErr
}

// NewFace 创建指定字号的字体
//
// 返回：
//   - *text.GoTextFace: 字体；字体源不可用时返回 nil，调用方应回退到调试字体
func NewFace(size float64) *text.GoTextFace {
	src, err := DefaultFaceSource()
	if err != nil {
		return nil
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// DrawCenteredText 以 (cx, cy) 为中心绘制文本
// font 为 nil 时使用 ebitenutil 风格的调试字体近似居中
func DrawCenteredText(screen *ebiten.Image, s string, font *text.GoTextFace, cx, cy float64, clr color.Color) {
	if s == "" {
		return
	}
	if font == nil {
		drawDebugCentered(screen, s, cx, cy)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, font, op)
}

// DrawText 以 (x, y) 为左上角绘制文本
func DrawText(screen *ebiten.Image, s string, font *text.GoTextFace, x, y float64, clr color.Color) {
	if s == "" {
		return
	}
	if font == nil {
		debugPrint(screen, s, int(x), int(y))
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, font, op)
}

// MeasureTextWidth 测量文本宽度，font 为 nil 时按调试字体的 6 像素字宽估算
func MeasureTextWidth(s string, font *text.GoTextFace) float64 {
	if s == "" {
		return 0
	}
	if font == nil {
		return float64(utf8.RuneCountInString(s) * debugCharWidth)
	}
	width, _ := text.Measure(s, font, 0)
	return width
}

// TruncateText 截断文本使其宽度不超过 maxWidth，被截断时以 "…" 结尾
func TruncateText(s string, font *text.GoTextFace, maxWidth float64) string {
	if maxWidth <= 0 {
		return ""
	}
	if MeasureTextWidth(s, font) <= maxWidth {
		return s
	}

	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := strings.TrimSpace(string(runes[:n])) + "…"
		if MeasureTextWidth(candidate, font) <= maxWidth {
			return candidate
		}
	}
	return ""
}
