package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/decker502/memoris/pkg/logger"
)

// SpeakerPlayer 通过系统扬声器播放音效的播放器（终端版使用）
//
// speaker 只能初始化一次，所有音效混入同一个 Mixer。
type SpeakerPlayer struct {
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	log    zerolog.Logger
}

// NewSpeakerPlayer 初始化扬声器并开始播放混音器
//
// 参数：
//   - sampleRate: 采样率
//   - volume: 线性音量 (0.0 ~ 1.0)
//
// 返回：
//   - *SpeakerPlayer: 播放器
//   - error: 音频设备不可用时返回错误
func NewSpeakerPlayer(sampleRate int, volume float64) (*SpeakerPlayer, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	p := &SpeakerPlayer{
		rate:   rate,
		volume: volume,
		mixer:  &beep.Mixer{},
		log:    logger.For("Speaker"),
	}
	speaker.Play(p.mixer)
	p.log.Debug().Int("sample_rate", sampleRate).Msg("speaker ready")
	return p, nil
}

// Play 把音效混入正在播放的混音器
func (p *SpeakerPlayer) Play(e Effect) {
	s := Streamer(e, p.rate, p.volume)
	if s == nil {
		p.log.Warn().Stringer("effect", e).Msg("unknown effect")
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close 清空尚未播放完的音效
func (p *SpeakerPlayer) Close() {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}
