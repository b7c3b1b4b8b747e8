// Package sound 合成游戏提示音
//
// 每个音效是一串音符，逐采样按波形与包络合成，不依赖音频资源文件。
// 同一个 beep.Streamer 既可以直接送入扬声器（终端版），
// 也可以通过 PCM 渲染成字节交给 ebiten 的 audio.Player（图形版）。
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Effect 提示音类型
type Effect int

const (
	EffectFlip Effect = iota
	EffectMatch
	EffectMismatch
	EffectVictory
)

// Effects 全部音效，按声明顺序
var Effects = []Effect{EffectFlip, EffectMatch, EffectMismatch, EffectVictory}

func (e Effect) String() string {
	switch e {
	case EffectFlip:
		return "flip"
	case EffectMatch:
		return "match"
	case EffectMismatch:
		return "mismatch"
	case EffectVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// waveform 音色
type waveform int

const (
	sine waveform = iota
	square
	saw
)

// note 音序中的一个音，音量在 attack 内线性升起、在最后的 release 内线性落下
type note struct {
	freq     float64
	duration time.Duration
	attack   time.Duration
	release  time.Duration
	wave     waveform
}

// 音效定义
var patterns = map[Effect][]note{
	EffectFlip: {
		{freq: 660, duration: 60 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, wave: sine},
	},
	EffectMatch: {
		{freq: 783.99, duration: 80 * time.Millisecond, attack: 5 * time.Millisecond, release: 30 * time.Millisecond, wave: square},
		{freq: 1046.5, duration: 160 * time.Millisecond, attack: 5 * time.Millisecond, release: 120 * time.Millisecond, wave: square},
	},
	EffectMismatch: {
		{freq: 140, duration: 180 * time.Millisecond, attack: 10 * time.Millisecond, release: 80 * time.Millisecond, wave: saw},
	},
	EffectVictory: {
		{freq: 523.25, duration: 120 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, wave: sine},
		{freq: 659.25, duration: 120 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, wave: sine},
		{freq: 783.99, duration: 120 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, wave: sine},
		{freq: 1046.5, duration: 400 * time.Millisecond, attack: 5 * time.Millisecond, release: 300 * time.Millisecond, wave: sine},
	},
}

// Duration 返回音效总时长，未知音效返回 0
func Duration(e Effect) time.Duration {
	var total time.Duration
	for _, n := range patterns[e] {
		total += n.duration
	}
	return total
}

// at 返回第 pos 个采样的波形值（-1 ~ 1）
// 相位由采样序号直接算出，voice 不需要保存振荡器状态
func (n note) at(pos int, rate beep.SampleRate) float64 {
	_, phase := math.Modf(n.freq * float64(pos) / float64(rate))
	switch n.wave {
	case square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case saw:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// level 返回第 pos 个采样（共 total 个）的包络音量
func (n note) level(pos, total int, rate beep.SampleRate) float64 {
	att, rel := rate.N(n.attack), rate.N(n.release)
	v := 1.0
	if att > 0 && pos < att {
		v = float64(pos) / float64(att)
	}
	if rel > 0 && total-pos <= rel {
		v = math.Min(v, float64(total-pos)/float64(rel))
	}
	return v
}

// voice 把一个音渲染成有限长度的音频流
func (n note) voice(rate beep.SampleRate) beep.Streamer {
	total := rate.N(n.duration)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		k := min(len(samples), total-pos)
		for i := 0; i < k; i++ {
			v := n.at(pos, rate) * n.level(pos, total, rate)
			samples[i] = [2]float64{v, v}
			pos++
		}
		return k, true
	})
}

// Streamer 创建音效的音频流
//
// 参数：
//   - e: 音效类型
//   - rate: 采样率
//   - volume: 线性音量 (0.0 ~ 1.0)
//
// 返回：
//   - beep.Streamer: 音频流；未知音效返回 nil
func Streamer(e Effect, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := patterns[e]
	if !ok {
		return nil
	}

	voices := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		voices = append(voices, n.voice(rate))
	}
	// effects.Gain 按 1+Gain 线性缩放，volume 为 0 时输出全零
	return &effects.Gain{Streamer: beep.Seq(voices...), Gain: max(volume, 0) - 1}
}
