package utils

import "math"

// BoardGrid 牌桌网格布局
//
// 牌按行优先排列：下标 i 位于第 i/Columns 行、第 i%Columns 列。
// 网格整体按比例缩放以适应可用区域，并在区域内居中。
type BoardGrid struct {
	Columns, Rows int
	Count         int

	OriginX, OriginY float64 // 第一张牌左上角（含缩放）
	TileW, TileH     float64 // 缩放后的牌尺寸
	Margin           float64 // 缩放后的间距
	Scale            float64
}

// NewBoardGrid 计算牌桌网格
//
// 参数：
//   - count: 牌的数量
//   - columns: 列数（<= 0 时按 1 处理）
//   - tileW, tileH, margin: 未缩放的牌尺寸与间距
//   - areaX, areaY, areaW, areaH: 可用区域
//
// 返回：
//   - BoardGrid: 网格布局；缩放比例不超过 1
func NewBoardGrid(count, columns int, tileW, tileH, margin, areaX, areaY, areaW, areaH float64) BoardGrid {
	columns = max(columns, 1)
	rows := (count + columns - 1) / columns

	rawW := float64(columns)*tileW + float64(columns+1)*margin
	rawH := float64(rows)*tileH + float64(rows+1)*margin

	scale := 1.0
	if rawW > 0 && rawH > 0 {
		scale = math.Min(1, math.Min(areaW/rawW, areaH/rawH))
	}
	scale = math.Max(scale, 0)

	g := BoardGrid{
		Columns: columns,
		Rows:    rows,
		Count:   count,
		TileW:   tileW * scale,
		TileH:   tileH * scale,
		Margin:  margin * scale,
		Scale:   scale,
	}
	g.OriginX = areaX + (areaW-rawW*scale)/2 + g.Margin
	g.OriginY = areaY + (areaH-rawH*scale)/2 + g.Margin
	return g
}

// TileRect 返回第 index 张牌的矩形（左上角与尺寸）
func (g BoardGrid) TileRect(index int) (x, y, w, h float64) {
	col := index % g.Columns
	row := index / g.Columns
	x = g.OriginX + float64(col)*(g.TileW+g.Margin)
	y = g.OriginY + float64(row)*(g.TileH+g.Margin)
	return x, y, g.TileW, g.TileH
}

// HitTest 将屏幕坐标转换为牌的下标
//
// 返回：
//   - int: 命中的牌下标；落在间距或网格外时返回 -1
func (g BoardGrid) HitTest(px, py float64) int {
	if g.TileW <= 0 || g.TileH <= 0 {
		return -1
	}
	dx := px - g.OriginX
	dy := py - g.OriginY
	if dx < 0 || dy < 0 {
		return -1
	}

	col := int(dx / (g.TileW + g.Margin))
	row := int(dy / (g.TileH + g.Margin))
	if col >= g.Columns || row >= g.Rows {
		return -1
	}

	// 落在间距上
	if dx-float64(col)*(g.TileW+g.Margin) >= g.TileW || dy-float64(row)*(g.TileH+g.Margin) >= g.TileH {
		return -1
	}

	index := row*g.Columns + col
	if index >= g.Count {
		return -1
	}
	return index
}

// Move 在网格中按方向移动光标，越界时停在边缘
// 用于终端界面的方向键导航
func (g BoardGrid) Move(index, dCol, dRow int) int {
	col := index%g.Columns + dCol
	row := index/g.Columns + dRow
	col = min(max(col, 0), g.Columns-1)
	row = min(max(row, 0), g.Rows-1)
	next := row*g.Columns + col
	if next >= g.Count {
		return index
	}
	return next
}
