package render

import "image/color"

// OpKind 绘制操作类型
type OpKind int

const (
	OpFill OpKind = iota
	OpCircle
	OpPath
)

// Op 一次被记录的绘制操作
type Op struct {
	Kind   OpKind
	X, Y   float64
	Radius float64
	Points []Point
	Color  color.Color
}

// RecordingCanvas 记录所有绘制调用的画布
// 用于测试渲染顺序与参数，也可用于无界面运行
type RecordingCanvas struct {
	Width, Height int
	Ops           []Op
}

// NewRecordingCanvas 创建指定尺寸的记录画布
func NewRecordingCanvas(width, height int) *RecordingCanvas {
	return &RecordingCanvas{Width: width, Height: height}
}

func (c *RecordingCanvas) Size() (int, int) {
	return c.Width, c.Height
}

func (c *RecordingCanvas) Fill(clr color.Color) {
	c.Ops = append(c.Ops, Op{Kind: OpFill, Color: clr})
}

func (c *RecordingCanvas) FillCircle(x, y, radius float64, clr color.Color) {
	c.Ops = append(c.Ops, Op{Kind: OpCircle, X: x, Y: y, Radius: radius, Color: clr})
}

func (c *RecordingCanvas) FillPath(points []Point, clr color.Color) {
	c.Ops = append(c.Ops, Op{Kind: OpPath, Points: append([]Point(nil), points...), Color: clr})
}

// Count 返回指定类型的操作数量
func (c *RecordingCanvas) Count(kind OpKind) int {
	n := 0
	for _, op := range c.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset 清空记录
func (c *RecordingCanvas) Reset() {
	c.Ops = c.Ops[:0]
}
