package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// CellScreen 终端画布需要的屏幕能力，tcell.Screen 满足此接口
type CellScreen interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// TerminalCanvas 把逻辑像素映射到终端字符格的画布
//
// 每个字符格对应 1 个逻辑像素宽、2 个逻辑像素高，
// 以补偿终端字符格约为 1:2 的宽高比。
type TerminalCanvas struct {
	screen     CellScreen
	background tcell.Color
	xs         []float64 // 扫描线交点缓冲
}

// NewTerminalCanvas 创建终端画布
func NewTerminalCanvas(screen CellScreen) *TerminalCanvas {
	return &TerminalCanvas{screen: screen, background: tcell.ColorBlack}
}

// Size 返回逻辑尺寸：宽 = 列数，高 = 行数 * 2
func (c *TerminalCanvas) Size() (int, int) {
	cols, rows := c.screen.Size()
	return cols, rows * 2
}

// Fill 用背景色清空所有字符格
func (c *TerminalCanvas) Fill(clr color.Color) {
	c.background = TermColor(clr)
	style := tcell.StyleDefault.Background(c.background)
	cols, rows := c.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// FillCircle 在圆心所在字符格绘制雪花字符
// 半径较大的雪花使用更醒目的字符
func (c *TerminalCanvas) FillCircle(x, y, radius float64, clr color.Color) {
	cols, rows := c.screen.Size()
	cx, cy := int(math.Floor(x)), int(math.Floor(y/2))
	if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
		return
	}

	glyph := '·'
	if radius >= 4 {
		glyph = '*'
	}
	style := tcell.StyleDefault.Background(c.background).Foreground(TermColor(clr))
	c.screen.SetContent(cx, cy, glyph, nil, style)
}

// FillPath 使用扫描线（奇偶规则）填充多边形
// 每行在字符格中心处采样
func (c *TerminalCanvas) FillPath(points []Point, clr color.Color) {
	if len(points) < 3 {
		return
	}
	cols, rows := c.screen.Size()
	style := tcell.StyleDefault.Background(TermColor(clr))

	for row := 0; row < rows; row++ {
		sy := float64(row)*2 + 1
		c.xs = c.xs[:0]
		for i := range points {
			a := points[i]
			b := points[(i+1)%len(points)]
			if (a.Y <= sy && b.Y > sy) || (b.Y <= sy && a.Y > sy) {
				t := (sy - a.Y) / (b.Y - a.Y)
				c.xs = append(c.xs, a.X+t*(b.X-a.X))
			}
		}
		sort.Float64s(c.xs)

		for i := 0; i+1 < len(c.xs); i += 2 {
			start := int(math.Ceil(c.xs[i] - 0.5))
			end := int(math.Floor(c.xs[i+1] - 0.5))
			if start < 0 {
				start = 0
			}
			if end >= cols {
				end = cols - 1
			}
			for x := start; x <= end; x++ {
				c.screen.SetContent(x, row, ' ', nil, style)
			}
		}
	}
}

// TermColor 将任意颜色转换为终端真彩色
func TermColor(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
