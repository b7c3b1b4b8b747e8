package game

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"

	"github.com/decker502/memoris/pkg/config"
	"github.com/decker502/memoris/pkg/logger"
	"github.com/decker502/memoris/pkg/sound"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有提示音的播放
//   - 把合成音效渲染成 PCM 并缓存播放器
//   - 提供开关与音量控制
//
// AudioManager 实现 sound.Player，可直接通过 sound.Listener 订阅引擎事件。
// audio.Context 为 nil 时所有播放都静默跳过。
type AudioManager struct {
	context *audio.Context
	cfg     config.AudioConfig
	enabled bool

	pcm     map[sound.Effect][]byte       // 渲染好的 PCM 数据
	players map[sound.Effect]*audio.Player // 播放器缓存（音效 -> 播放器）

	log zerolog.Logger
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（静音）
//   - cfg: 采样率与音量配置
//   - enabled: 是否启用音效
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, cfg config.AudioConfig, enabled bool) *AudioManager {
	return &AudioManager{
		context: ctx,
		cfg:     cfg,
		enabled: enabled,
		pcm:     make(map[sound.Effect][]byte),
		players: make(map[sound.Effect]*audio.Player),
		log:     logger.For("AudioManager"),
	}
}

// Play 播放音效
// 同一音效再次播放时从头开始
func (am *AudioManager) Play(e sound.Effect) {
	if !am.enabled || am.context == nil {
		return
	}

	player := am.getPlayer(e)
	if player == nil {
		return
	}

	player.SetVolume(am.cfg.Volume)
	if err := player.Rewind(); err != nil {
		am.log.Warn().Err(err).Stringer("effect", e).Msg("failed to rewind sound")
	}
	player.Play()
}

// SetEnabled 开启或关闭音效
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
	if enabled {
		return
	}
	for _, p := range am.players {
		p.Pause()
	}
}

// Enabled 返回音效是否开启
func (am *AudioManager) Enabled() bool {
	return am.enabled
}

// SetVolume 设置音效音量 (0.0 ~ 1.0)
// 立即应用到所有缓存的播放器
func (am *AudioManager) SetVolume(volume float64) {
	am.cfg.Volume = volume
	for _, p := range am.players {
		p.SetVolume(volume)
	}
}

// Volume 返回当前音量
func (am *AudioManager) Volume() float64 {
	return am.cfg.Volume
}

// Preload 预先渲染全部音效
// 在场景初始化时调用，避免首次播放时的卡顿
func (am *AudioManager) Preload() {
	for _, e := range sound.Effects {
		am.samples(e)
		if am.context != nil {
			am.getPlayer(e)
		}
	}
	am.log.Debug().Int("effects", len(am.pcm)).Msg("preloaded sounds")
}

// samples 获取或渲染音效 PCM
// 音量由播放器控制，这里按满音量渲染
func (am *AudioManager) samples(e sound.Effect) []byte {
	if data, ok := am.pcm[e]; ok {
		return data
	}
	data := sound.PCM(e, am.cfg.SampleRate, 1)
	if data == nil {
		am.log.Warn().Stringer("effect", e).Msg("sound not found")
		return nil
	}
	am.pcm[e] = data
	return data
}

// getPlayer 获取或创建音效播放器
func (am *AudioManager) getPlayer(e sound.Effect) *audio.Player {
	if player, exists := am.players[e]; exists {
		return player
	}
	data := am.samples(e)
	if data == nil {
		return nil
	}
	player := am.context.NewPlayerFromBytes(data)
	am.players[e] = player
	return player
}
