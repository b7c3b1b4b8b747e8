// Package render 定义模拟器使用的绘制接口及其实现
//
// 核心包只依赖 Canvas 接口。终端屏幕和测试用的记录画布在本包实现，
// ebiten 图像实现在子包 ebitencanvas 中，本包不引入 ebiten。
package render

import "image/color"

// Point 画布坐标（逻辑像素）
type Point struct {
	X, Y float64
}

// Canvas 可绘制表面
type Canvas interface {
	// Size 返回画布尺寸（逻辑像素）
	Size() (width, height int)
	// Fill 用纯色填充整个画布
	Fill(clr color.Color)
	// FillCircle 绘制实心圆
	FillCircle(x, y, radius float64, clr color.Color)
	// FillPath 填充由顶点序列围成的闭合多边形
	FillPath(points []Point, clr color.Color)
}
