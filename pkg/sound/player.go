package sound

import (
	"github.com/decker502/memoris/pkg/match"
)

// Player 播放提示音的出口
type Player interface {
	Play(e Effect)
}

// Nop 不发声的播放器，用于关闭声音或音频初始化失败时
type Nop struct{}

// Play 什么也不做
func (Nop) Play(Effect) {}

// ForEvent 返回引擎事件对应的提示音
//
// 返回：
//   - Effect: 提示音
//   - bool: 该事件是否有提示音（新局与翻回没有）
func ForEvent(ev match.Event) (Effect, bool) {
	switch ev.Type {
	case match.EventFlipped:
		return EffectFlip, true
	case match.EventMatched:
		return EffectMatch, true
	case match.EventMismatched:
		return EffectMismatch, true
	case match.EventVictory:
		return EffectVictory, true
	default:
		return 0, false
	}
}

// Listener 把引擎事件转成提示音，返回值可直接传给 Engine.Subscribe
func Listener(p Player) match.Listener {
	return func(ev match.Event) {
		if e, ok := ForEvent(ev); ok {
			p.Play(e)
		}
	}
}
