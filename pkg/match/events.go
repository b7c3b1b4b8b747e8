package match

// EventType 引擎事件类型
type EventType int

const (
	// EventNewGame 新的一局已洗牌完成
	EventNewGame EventType = iota
	// EventFlipped 一张牌被翻到正面
	EventFlipped
	// EventMatched 两张牌配对成功
	EventMatched
	// EventMismatched 两张牌不匹配，即将在延迟后翻回
	EventMismatched
	// EventReverted 不匹配的两张牌已翻回背面
	EventReverted
	// EventVictory 所有卡牌均已配对（每局只触发一次）
	EventVictory
)

// String 返回事件名称
func (t EventType) String() string {
	switch t {
	case EventNewGame:
		return "new_game"
	case EventFlipped:
		return "flipped"
	case EventMatched:
		return "matched"
	case EventMismatched:
		return "mismatched"
	case EventReverted:
		return "reverted"
	case EventVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Event 引擎向表现层发出的通知
type Event struct {
	Type    EventType
	RoundID string
	// Indices 涉及的卡牌下标（翻牌为 1 个，配对结果为 2 个）
	Indices []int
	// Face 翻开或配对的牌面（不匹配时为第一张的牌面）
	Face string
	// Moves 本局已比较的对数
	Moves int
}

// Listener 事件回调，在引擎所在线程上同步调用
type Listener func(Event)
