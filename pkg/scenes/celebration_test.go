package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/memoris/pkg/utils"
)

func TestCelebration_StartStop(t *testing.T) {
	c := NewCelebration(utils.NewRandom(3), 900, 1300)
	assert.False(t, c.Active())

	c.Start()
	assert.True(t, c.Active())
	assert.Len(t, c.pieces, confettiCount)

	c.Stop()
	assert.False(t, c.Active())
	assert.Empty(t, c.pieces)
}

func TestCelebration_PiecesFallAndRecycle(t *testing.T) {
	c := NewCelebration(utils.NewRandom(3), 900, 400)
	c.Start()

	for i := 0; i < 600; i++ {
		c.Update(1.0 / 60)
		for _, p := range c.pieces {
			assert.LessOrEqual(t, p.Y, 400+p.Size+confettiMaxFall/60, "落出底部的彩纸应回到顶部")
		}
	}
	assert.Len(t, c.pieces, confettiCount)
	assert.True(t, c.Active())
}

func TestCelebration_InactiveUpdateIsNoop(t *testing.T) {
	c := NewCelebration(utils.NewRandom(3), 100, 100)
	c.Update(1)
	assert.Empty(t, c.pieces)
}
