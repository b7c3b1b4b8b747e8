package scenes

import (
	"image/color"

	"github.com/decker502/memoris/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 场景名，用于 SceneManager.Register / Load
const (
	SceneMatch = "match"
	SceneSnow  = "snow"
)

// fade 按透明度缩放颜色（ebiten 使用预乘 alpha）
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
