// Package ebitencanvas 把 render.Canvas 实现在 ebiten.Image 上
//
// 单独成包，使 snowfall 等核心包和终端前端只依赖 render 接口，不链接 ebiten。
package ebitencanvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/memoris/pkg/render"
)

var (
	// whiteImage 填充三角形时使用的纯白纹理
	whiteImage = ebiten.NewImage(3, 3)
	// whiteSubImage 取中心像素，避免边缘采样带来的颜色渗透
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas 基于 ebiten.Image 的画布
type Canvas struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// New 创建绘制到 dst 的画布
func New(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

var _ render.Canvas = (*Canvas)(nil)

// Reset 切换绘制目标（每帧的 screen 可能不同），复用顶点缓冲
func (c *Canvas) Reset(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Fill(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *Canvas) FillCircle(x, y, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(radius), clr, true)
}

// FillPath 使用非零环绕规则填充多边形
func (c *Canvas) FillPath(points []render.Point, clr color.Color) {
	if len(points) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])

	r, g, b, a := clr.RGBA()
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = float32(r) / 0xffff
		c.vertices[i].ColorG = float32(g) / 0xffff
		c.vertices[i].ColorB = float32(b) / 0xffff
		c.vertices[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.NonZero
	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, op)
}
