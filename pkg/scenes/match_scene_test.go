package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/memoris/pkg/config"
	"github.com/decker502/memoris/pkg/match"
	"github.com/decker502/memoris/pkg/sound"
	"github.com/decker502/memoris/pkg/utils"
)

type recordingPlayer struct {
	played []sound.Effect
}

func (p *recordingPlayer) Play(e sound.Effect) { p.played = append(p.played, e) }

func newTestMatchScene(t *testing.T, snow bool) (*MatchScene, *recordingPlayer) {
	t.Helper()
	p := &recordingPlayer{}
	s := NewMatchScene(MatchSceneOptions{
		Config:         *config.DefaultGameConfig(),
		Random:         utils.NewRandom(11),
		Audio:          p,
		SnowBackground: snow,
	})
	return s, p
}

func tapCard(s *MatchScene, index int) bool {
	x, y, w, h := s.grid.TileRect(index)
	return s.HandleTap(x+w/2, y+h/2)
}

func tapButton(s *MatchScene, b *button) bool {
	return s.HandleTap(b.X+b.Width/2, b.Y+b.Height/2)
}

// pairsByFace 按牌面分组卡牌下标
func pairsByFace(cards []match.Card) map[string][]int {
	pairs := make(map[string][]int)
	for i, c := range cards {
		pairs[c.Face] = append(pairs[c.Face], i)
	}
	return pairs
}

// mismatchedPair 返回两张牌面不同的卡牌下标
func mismatchedPair(cards []match.Card) (int, int) {
	for i := 1; i < len(cards); i++ {
		if cards[i].Face != cards[0].Face {
			return 0, i
		}
	}
	return -1, -1
}

func TestMatchScene_LayoutFitsScreen(t *testing.T) {
	s, _ := newTestMatchScene(t, false)

	assert.Equal(t, 16, s.Engine().Len())
	assert.Equal(t, 4, s.grid.Columns)
	assert.Equal(t, 4, s.grid.Rows)

	x, y, w, h := s.grid.TileRect(15)
	assert.LessOrEqual(t, x+w, float64(config.GameWindowWidth))
	assert.LessOrEqual(t, y+h, float64(config.GameWindowHeight))
	_, top, _, _ := s.grid.TileRect(0)
	assert.GreaterOrEqual(t, top, config.HUDHeight)
}

func TestMatchScene_TapFlipsCard(t *testing.T) {
	s, p := newTestMatchScene(t, false)

	require.True(t, tapCard(s, 3))
	assert.Equal(t, match.FaceUp, s.Engine().Card(3).State)
	assert.Equal(t, []sound.Effect{sound.EffectFlip}, p.played)

	assert.False(t, s.HandleTap(1, 1), "点击空白处不处理")
	assert.False(t, tapCard(s, 3), "已翻开的牌不能再翻")
}

func TestMatchScene_MismatchRevertsAfterDelay(t *testing.T) {
	s, p := newTestMatchScene(t, false)
	a, b := mismatchedPair(s.Engine().Cards())
	require.GreaterOrEqual(t, b, 0)

	require.True(t, tapCard(s, a))
	require.True(t, tapCard(s, b))
	assert.True(t, s.Engine().IsLocked())

	third := 0
	for third == a || third == b {
		third++
	}
	assert.False(t, tapCard(s, third), "比较期间忽略点击")

	s.update(0.5)
	assert.Equal(t, match.FaceUp, s.Engine().Card(a).State)

	s.update(0.6)
	assert.Equal(t, match.FaceDown, s.Engine().Card(a).State)
	assert.Equal(t, match.FaceDown, s.Engine().Card(b).State)
	assert.False(t, s.Engine().IsLocked())
	assert.Zero(t, s.animElapsed[a], "翻回时重新开始动画")

	assert.Equal(t, []sound.Effect{sound.EffectFlip, sound.EffectFlip, sound.EffectMismatch}, p.played)
}

func TestMatchScene_VictoryDialogAndRestart(t *testing.T) {
	s, p := newTestMatchScene(t, false)

	for _, idx := range pairsByFace(s.Engine().Cards()) {
		require.Len(t, idx, 2)
		require.True(t, tapCard(s, idx[0]))
		require.True(t, tapCard(s, idx[1]))
	}

	assert.True(t, s.Engine().CheckWin())
	assert.True(t, s.DialogOpen())
	assert.False(t, s.RestartVisible(), "确认弹窗前不显示重开按钮")
	assert.True(t, s.celebration.Active())
	assert.Equal(t, sound.EffectVictory, p.played[len(p.played)-1])

	// 弹窗打开时只响应 OK
	assert.False(t, s.HandleTap(1, 1))
	assert.False(t, tapButton(s, s.restartButton))

	require.True(t, tapButton(s, s.okButton))
	assert.False(t, s.DialogOpen())
	assert.True(t, s.RestartVisible())
	assert.True(t, s.celebration.Active(), "彩纸持续到重新开局")

	oldRound := s.Engine().RoundID()
	require.True(t, tapButton(s, s.restartButton))
	assert.NotEqual(t, oldRound, s.Engine().RoundID())
	assert.False(t, s.RestartVisible())
	assert.False(t, s.celebration.Active())
	assert.Zero(t, s.Engine().Moves())
	for _, c := range s.Engine().Cards() {
		assert.Equal(t, match.FaceDown, c.State)
	}
}

func TestMatchScene_RestartMidGameCancelsRevert(t *testing.T) {
	s, _ := newTestMatchScene(t, false)
	a, b := mismatchedPair(s.Engine().Cards())
	tapCard(s, a)
	tapCard(s, b)

	s.Restart()
	assert.False(t, s.Engine().IsLocked())

	s.update(2)
	for _, c := range s.Engine().Cards() {
		assert.Equal(t, match.FaceDown, c.State)
	}
}

func TestMatchScene_SnowBackgroundTicks(t *testing.T) {
	s, _ := newTestMatchScene(t, true)
	require.NotNil(t, s.snow)

	before := s.snow.Flakes()
	s.update(1.0 / 60)
	after := s.snow.Flakes()
	assert.NotEqual(t, before[0].Y, after[0].Y)
}

func TestMatchScene_AcknowledgeWithoutDialogIsNoop(t *testing.T) {
	s, _ := newTestMatchScene(t, false)
	s.Acknowledge()
	assert.False(t, s.RestartVisible())
}

func TestFade(t *testing.T) {
	c := tableColor
	assert.Equal(t, c, fade(c, 1))
	assert.Equal(t, uint8(0), fade(c, 0).A)
	half := fade(c, 0.5)
	assert.Equal(t, uint8(127), half.A)
	assert.Equal(t, uint8(float64(c.R)*0.5), half.R)
}

func TestDialogTransition(t *testing.T) {
	dim, scale := dialogTransition(0)
	assert.Equal(t, uint8(0), dim)
	assert.InDelta(t, dialogStartScale, scale, 1e-9)

	dim, scale = dialogTransition(1)
	assert.Equal(t, uint8(dialogDimAlpha), dim)
	assert.InDelta(t, 1.0, scale, 1e-9)

	midDim, midScale := dialogTransition(0.5)
	assert.Greater(t, midDim, uint8(0))
	assert.Less(t, midDim, uint8(dialogDimAlpha))
	assert.Greater(t, midScale, dialogStartScale)
}
