package ui

import (
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// 调试字体的字符尺寸
const (
	debugCharWidth  = 6
	debugCharHeight = 16
)

func debugPrint(screen *ebiten.Image, s string, x, y int) {
	ebitenutil.DebugPrintAt(screen, s, x, y)
}

func drawDebugCentered(screen *ebiten.Image, s string, cx, cy float64) {
	w := utf8.RuneCountInString(s) * debugCharWidth
	debugPrint(screen, s, int(cx)-w/2, int(cy)-debugCharHeight/2)
}
