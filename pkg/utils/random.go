package utils

import (
	"math/rand/v2"
	"time"
)

// Random 随机数源接口
//
// 洗牌、雪花生成等所有随机行为都通过此接口获取随机数，
// 测试时可注入固定种子的实现以获得确定性结果。
// *rand.Rand（math/rand/v2）直接满足此接口。
type Random interface {
	// Float64 返回 [0.0, 1.0) 区间的均匀分布随机数
	Float64() float64
	// NormFloat64 返回标准正态分布（均值 0，标准差 1）随机数
	NormFloat64() float64
	// IntN 返回 [0, n) 区间的均匀分布随机整数
	IntN(n int) int
	// Shuffle 使用 Fisher–Yates 算法打乱 n 个元素
	Shuffle(n int, swap func(i, j int))
}

// pcgStream PCG 第二个种子分量（任意奇数常量）
const pcgStream = 0x9e3779b97f4a7c15

// NewRandom 创建随机数源
//
// 参数：
//   - seed: 随机种子，0 表示使用当前时间作为种子
//
// 返回：
//   - *rand.Rand: 满足 Random 接口的随机数源
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^pcgStream))
}

// RandRange 返回 [min, max) 区间的均匀分布随机数
func RandRange(r Random, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Clamp 将 v 限制在 [lo, hi] 区间内
// 当 hi < lo 时返回 lo（退化区间）
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
