// Package snowfall 实现带积雪地形的飘雪粒子模拟
//
// Simulator 拥有固定数量的雪花（连续切片，按下标原地更新）和一维高度图。
// 雪花落到积雪表面时抬高积雪峰值并在画面上方重生，永不销毁。
// Simulator 本身不加锁；跨线程使用时通过 Loop 串行化 Tick 与 Render。
package snowfall

import (
	"image/color"
	"math"

	"github.com/decker502/memoris/pkg/config"
	"github.com/decker502/memoris/pkg/render"
	"github.com/decker502/memoris/pkg/utils"
)

// Snowflake 单个雪花粒子
type Snowflake struct {
	X, Y   float64
	Radius float64
	Speed  float64 // 每帧下落像素
	Drift  float64 // 水平摆动系数
	Shade  uint8   // 颜色为 rgb(Shade, Shade, 255)
}

// Color 返回雪花颜色
func (f Snowflake) Color() color.RGBA {
	return color.RGBA{R: f.Shade, G: f.Shade, B: 255, A: 255}
}

// Simulator 飘雪模拟器
type Simulator struct {
	cfg config.SnowfallConfig
	rng utils.Random

	width, height int
	flakes        []Snowflake
	surface       []float64 // 每列积雪表面的 y 坐标
	peak          float64   // 中心处累计积雪高度
	landings      int

	background color.RGBA
	driftColor color.RGBA
	path       []render.Point
}

// New 创建模拟器
// rng 为 nil 时按时间播种
func New(cfg config.SnowfallConfig, rng utils.Random) *Simulator {
	if rng == nil {
		rng = utils.NewRandom(0)
	}
	return &Simulator{
		cfg:        cfg,
		rng:        rng,
		background: config.MustColor(cfg.Background),
		driftColor: config.MustColor(cfg.DriftColor),
	}
}

// Init 按视图尺寸初始化高度图并生成全部雪花
//
// 高度图初始为平地（每列等于 height），积雪峰值清零，
// 初始雪花的纵坐标在整个视图高度内均匀分布。
func (s *Simulator) Init(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	s.peak = 0
	s.landings = 0

	s.surface = make([]float64, s.width)
	for i := range s.surface {
		s.surface[i] = float64(s.height)
	}

	s.flakes = make([]Snowflake, s.cfg.Count)
	for i := range s.flakes {
		s.flakes[i] = s.SpawnParticle(true)
	}
}

// Resize 视图尺寸变化时重建高度图
//
// 已有雪花与累计峰值保留（峰值不超过新高度）。尺寸未变化时为空操作。
// 模拟器尚未初始化时等同于 Init。
func (s *Simulator) Resize(width, height int) {
	if s.flakes == nil {
		s.Init(width, height)
		return
	}
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	s.width, s.height = width, height
	s.peak = math.Min(s.peak, float64(height))
	s.surface = make([]float64, width)
	s.recalculateSurface()
}

// SpawnParticle 生成一个雪花
//
// 横坐标服从以视图中心为均值、width/SpreadDivisor 为标准差的正态分布，
// 并限制在 [0, width-1]；宽度为 0 时返回 0。
// 初始雪花纵坐标在视图内均匀分布，重生的雪花位于画面上方 RespawnY 处。
func (s *Simulator) SpawnParticle(isInitial bool) Snowflake {
	y := s.cfg.RespawnY
	if isInitial {
		y = s.rng.Float64() * float64(s.height)
	}

	shadeSpan := s.cfg.Shade.Max - s.cfg.Shade.Min + 1
	return Snowflake{
		X:      s.biasedX(),
		Y:      y,
		Radius: utils.RandRange(s.rng, s.cfg.Radius.Min, s.cfg.Radius.Max),
		Speed:  utils.RandRange(s.rng, s.cfg.Speed.Min, s.cfg.Speed.Max),
		Drift:  utils.RandRange(s.rng, s.cfg.Drift.Min, s.cfg.Drift.Max),
		Shade:  uint8(s.cfg.Shade.Min + s.rng.IntN(shadeSpan)),
	}
}

// biasedX 生成偏向中心的横坐标
func (s *Simulator) biasedX() float64 {
	if s.width == 0 {
		return 0
	}
	w := float64(s.width)
	x := s.rng.NormFloat64()*(w/s.cfg.SpreadDivisor) + w/2
	return utils.Clamp(x, 0, w-1)
}

// recalculateSurface 根据当前峰值重新计算抛物线形积雪表面
//
//	surface[x] = (height - peak) + (x - width/2)² / (width * ParabolaFactor)
//
// 结果限制在 [0, height]。
func (s *Simulator) recalculateSurface() {
	if s.width == 0 {
		return
	}
	w, h := float64(s.width), float64(s.height)
	centerX := w / 2
	peakY := h - s.peak
	denom := w * s.cfg.ParabolaFactor

	for x := range s.surface {
		dx := float64(x) - centerX
		s.surface[x] = utils.Clamp(peakY+dx*dx/denom, 0, h)
	}
}

// Tick 推进一帧
//
// 先根据峰值重算积雪表面，再逐个更新雪花：
//   - 越靠近底部下落越慢（最多减速 MaxSlowdown）
//   - 水平方向按 sin(y / DriftWavelength) * drift * DriftAmplitude 摆动
//   - 越过左右边界时从另一侧出现
//   - 落到积雪表面：峰值增加 radius * LandingGain 并重生
//   - 位于高度图之外且落出底部：直接重生，不影响积雪
func (s *Simulator) Tick() {
	s.recalculateSurface()

	w, h := float64(s.width), float64(s.height)
	for i := range s.flakes {
		f := &s.flakes[i]

		progress := s.cfg.MaxSlowdown
		if h > 0 {
			progress = math.Min(f.Y/h, s.cfg.MaxSlowdown)
		}
		f.Y += f.Speed * (1 - progress)
		f.X += math.Sin(f.Y/s.cfg.DriftWavelength) * f.Drift * s.cfg.DriftAmplitude

		if f.X < 0 {
			f.X = w
		}
		if f.X > w {
			f.X = 0
		}

		col := int(f.X)
		if col >= 0 && col < len(s.surface) {
			if f.Y >= s.surface[col] {
				s.land(f.Radius)
				*f = s.SpawnParticle(false)
			}
		} else if f.Y > h {
			*f = s.SpawnParticle(false)
		}
	}
}

// land 记录一次落地，峰值不超过视图高度
func (s *Simulator) land(radius float64) {
	s.landings++
	s.peak = math.Min(s.peak+radius*s.cfg.LandingGain, float64(s.height))
}

// Render 绘制背景、所有雪花和积雪
func (s *Simulator) Render(c render.Canvas) {
	c.Fill(s.background)

	for _, f := range s.flakes {
		c.FillCircle(f.X, f.Y, f.Radius, f.Color())
	}

	h := float64(s.height)
	s.path = s.path[:0]
	s.path = append(s.path, render.Point{X: 0, Y: h})
	for i, y := range s.surface {
		s.path = append(s.path, render.Point{X: float64(i), Y: y})
	}
	s.path = append(s.path, render.Point{X: float64(s.width), Y: h})
	c.FillPath(s.path, s.driftColor)
}

// Size 返回视图尺寸
func (s *Simulator) Size() (int, int) {
	return s.width, s.height
}

// Flakes 返回雪花切片的副本
func (s *Simulator) Flakes() []Snowflake {
	return append([]Snowflake(nil), s.flakes...)
}

// Depth 返回指定列的积雪深度（height - surface），列越界时返回 0
func (s *Simulator) Depth(col int) float64 {
	if col < 0 || col >= len(s.surface) {
		return 0
	}
	return float64(s.height) - s.surface[col]
}

// Peak 返回中心处累计积雪高度
func (s *Simulator) Peak() float64 {
	return s.peak
}

// Landings 返回累计落地次数
func (s *Simulator) Landings() int {
	return s.landings
}
