package sound

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/memoris/pkg/match"
)

const testRate = 48000

func TestEffect_String(t *testing.T) {
	tests := []struct {
		effect Effect
		want   string
	}{
		{EffectFlip, "flip"},
		{EffectMatch, "match"},
		{EffectMismatch, "mismatch"},
		{EffectVictory, "victory"},
		{Effect(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.effect.String())
		})
	}
}

func TestPCM_LengthMatchesDuration(t *testing.T) {
	rate := beep.SampleRate(testRate)
	for _, e := range Effects {
		t.Run(e.String(), func(t *testing.T) {
			var samples int
			for _, n := range patterns[e] {
				samples += rate.N(n.duration)
			}
			data := PCM(e, testRate, 1)
			assert.Len(t, data, samples*4, "每个采样 2 声道 × 2 字节")
		})
	}
}

func TestNote_Level(t *testing.T) {
	rate := beep.SampleRate(1000)
	n := note{freq: 100, duration: 100 * time.Millisecond, attack: 10 * time.Millisecond, release: 20 * time.Millisecond}
	total := rate.N(n.duration)

	assert.Zero(t, n.level(0, total, rate), "attack 从静音开始")
	assert.InDelta(t, 0.5, n.level(5, total, rate), 1e-9)
	assert.Equal(t, 1.0, n.level(50, total, rate))
	assert.InDelta(t, 0.5, n.level(90, total, rate), 1e-9)
	assert.InDelta(t, 0.05, n.level(99, total, rate), 1e-9)

	short := note{duration: 10 * time.Millisecond, attack: 8 * time.Millisecond, release: 8 * time.Millisecond}
	for pos := 0; pos < 10; pos++ {
		v := short.level(pos, 10, rate)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0, "attack 与 release 重叠时取较小值")
	}
}

func TestNote_Waveforms(t *testing.T) {
	rate := beep.SampleRate(1000)
	// 100Hz @ 1000Hz：每 10 个采样一个周期
	assert.Equal(t, 1.0, note{freq: 100, wave: square}.at(2, rate))
	assert.Equal(t, -1.0, note{freq: 100, wave: square}.at(7, rate))
	assert.InDelta(t, -1.0, note{freq: 100, wave: saw}.at(0, rate), 1e-9)
	assert.InDelta(t, 0.0, note{freq: 100, wave: saw}.at(5, rate), 1e-9)
	assert.InDelta(t, 1.0, note{freq: 250, wave: sine}.at(1, rate), 1e-9)
}

func TestNote_VoiceEndsAfterDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := note{freq: 100, duration: 30 * time.Millisecond, release: 10 * time.Millisecond, wave: sine}.voice(rate)

	buf := make([][2]float64, 20)
	n, ok := s.Stream(buf)
	assert.Equal(t, 20, n)
	assert.True(t, ok)
	n, ok = s.Stream(buf)
	assert.Equal(t, 10, n)
	assert.True(t, ok)
	n, ok = s.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestPCM_Audible(t *testing.T) {
	data := PCM(EffectVictory, testRate, 0.8)
	require.NotEmpty(t, data)

	first := int16(binary.LittleEndian.Uint16(data[0:2]))
	assert.Zero(t, first, "包络从静音开始")

	var peak int16
	for i := 0; i+1 < len(data); i += 2 {
		v := int16(binary.LittleEndian.Uint16(data[i : i+2]))
		if v < 0 {
			v = -v
		}
		peak = max(peak, v)
	}
	assert.Greater(t, peak, int16(10000))
}

func TestPCM_Silent(t *testing.T) {
	data := PCM(EffectMatch, testRate, 0)
	require.NotEmpty(t, data)
	for _, b := range data {
		require.Zero(t, b)
	}
}

func TestPCM_Unknown(t *testing.T) {
	assert.Nil(t, PCM(Effect(42), testRate, 1))
	assert.Nil(t, Streamer(Effect(42), testRate, 1))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 60*time.Millisecond, Duration(EffectFlip))
	assert.Equal(t, 760*time.Millisecond, Duration(EffectVictory))
	assert.Zero(t, Duration(Effect(42)))
}

func TestToInt16_Clamps(t *testing.T) {
	assert.Equal(t, int16(32767), toInt16(2))
	assert.Equal(t, int16(-32767), toInt16(-2))
	assert.Equal(t, int16(0), toInt16(0))
}

type recordingPlayer struct {
	played []Effect
}

func (p *recordingPlayer) Play(e Effect) { p.played = append(p.played, e) }

func TestListener_MapsEvents(t *testing.T) {
	p := &recordingPlayer{}
	l := Listener(p)

	for _, typ := range []match.EventType{
		match.EventNewGame,
		match.EventFlipped,
		match.EventMismatched,
		match.EventReverted,
		match.EventMatched,
		match.EventVictory,
	} {
		l(match.Event{Type: typ})
	}

	assert.Equal(t, []Effect{EffectFlip, EffectMismatch, EffectMatch, EffectVictory}, p.played)
}

func TestNop(t *testing.T) {
	var p Player = Nop{}
	assert.NotPanics(t, func() { p.Play(EffectFlip) })
}
