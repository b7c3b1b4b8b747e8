package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRandom_SameSeedSameSequence(t *testing.T) {
	a := NewRandom(42)
	b := NewRandom(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64(), "第 %d 次取值应相同", i)
	}
}

func TestNewRandom_ZeroSeedUsesClock(t *testing.T) {
	r := NewRandom(0)
	v := r.Float64()
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 1.0)
}

func TestRandRange(t *testing.T) {
	r := NewRandom(7)
	for i := 0; i < 1000; i++ {
		v := RandRange(r, 2, 6)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 6.0)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name           string
		v, lo, hi, out float64
	}{
		{"区间内", 5, 0, 10, 5},
		{"低于下限", -3, 0, 10, 0},
		{"高于上限", 12, 0, 10, 10},
		{"退化区间", 4, 0, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.out, Clamp(tt.v, tt.lo, tt.hi))
		})
	}
}
