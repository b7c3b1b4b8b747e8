package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/memoris/pkg/utils"
)

const (
	confettiCount   = 140
	confettiGravity = 420.0 // 像素/秒²
	confettiMaxFall = 520.0 // 终端速度
)

var confettiColors = []color.RGBA{
	{R: 255, G: 99, B: 132, A: 255},
	{R: 255, G: 205, B: 86, A: 255},
	{R: 75, G: 192, B: 192, A: 255},
	{R: 54, G: 162, B: 235, A: 255},
	{R: 153, G: 102, B: 255, A: 255},
}

// confetti 彩纸粒子
type confetti struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Spin   float64 // 翻转相位，决定绘制高度
	Color  color.RGBA
}

// Celebration 胜利时的彩纸动画
//
// Start 后彩纸从屏幕上方喷出并下落，落出底部后回到顶部继续飘落，
// 直到 Stop（重新开局）为止。
type Celebration struct {
	rng           utils.Random
	width, height float64
	pieces        []confetti
	active        bool
}

// NewCelebration 创建彩纸动画
func NewCelebration(rng utils.Random, width, height float64) *Celebration {
	return &Celebration{rng: rng, width: width, height: height}
}

// Start 开始播放（重复调用会重新喷出）
func (c *Celebration) Start() {
	c.pieces = c.pieces[:0]
	for i := 0; i < confettiCount; i++ {
		c.pieces = append(c.pieces, c.spawn(true))
	}
	c.active = true
}

// Stop 停止并清空彩纸
func (c *Celebration) Stop() {
	c.active = false
	c.pieces = c.pieces[:0]
}

// Active 是否正在播放
func (c *Celebration) Active() bool {
	return c.active
}

// spawn 生成一片彩纸
// burst 为 true 时从顶部中央向上向外喷出，否则从顶部随机位置落下
func (c *Celebration) spawn(burst bool) confetti {
	p := confetti{
		Size:  utils.RandRange(c.rng, 8, 16),
		Spin:  c.rng.Float64() * 2 * math.Pi,
		Color: confettiColors[c.rng.IntN(len(confettiColors))],
	}
	if burst {
		p.X = c.width/2 + utils.RandRange(c.rng, -40, 40)
		p.Y = utils.RandRange(c.rng, -20, 20)
		p.VX = utils.RandRange(c.rng, -320, 320)
		p.VY = utils.RandRange(c.rng, -260, 40)
	} else {
		p.X = c.rng.Float64() * c.width
		p.Y = -p.Size
		p.VX = utils.RandRange(c.rng, -40, 40)
		p.VY = utils.RandRange(c.rng, 60, 160)
	}
	return p
}

// Update 推进动画
func (c *Celebration) Update(dt float64) {
	if !c.active {
		return
	}
	for i := range c.pieces {
		p := &c.pieces[i]
		p.VY = math.Min(p.VY+confettiGravity*dt, confettiMaxFall)
		p.VX *= 1 - math.Min(dt, 1)*0.8
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Spin += dt * 6

		if p.Y > c.height+p.Size {
			*p = c.spawn(false)
		}
	}
}

// Draw 绘制彩纸
func (c *Celebration) Draw(screen *ebiten.Image) {
	if !c.active {
		return
	}
	for _, p := range c.pieces {
		h := p.Size * math.Max(math.Abs(math.Cos(p.Spin)), 0.2)
		vector.DrawFilledRect(screen, float32(p.X-p.Size/2), float32(p.Y-h/2), float32(p.Size), float32(h), p.Color, false)
	}
}
