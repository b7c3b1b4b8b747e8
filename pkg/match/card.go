package match

// CardState 卡牌翻转状态
type CardState int

const (
	// FaceDown 背面朝上
	FaceDown CardState = iota
	// FaceUp 正面朝上，等待配对结果
	FaceUp
	// Matched 已配对，从棋盘上隐藏
	Matched
)

// String 返回状态名称（用于日志）
func (s CardState) String() string {
	switch s {
	case FaceDown:
		return "face_down"
	case FaceUp:
		return "face_up"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// Card 棋盘上的一张卡牌
type Card struct {
	// Face 牌面标识，每个牌面在一局中恰好出现两次
	Face string
	// State 当前翻转状态
	State CardState
}

// Phase 引擎状态机阶段
//
//	Idle → OneFlipped → Checking → Idle          （不匹配，延迟后翻回）
//	Idle → OneFlipped → Checking → Won | Idle    （匹配）
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseOneFlipped
	PhaseChecking
	PhaseWon
)

// String 返回阶段名称（用于日志）
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOneFlipped:
		return "one_flipped"
	case PhaseChecking:
		return "checking"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// DefaultFaces 默认的 8 个牌面
var DefaultFaces = []string{"cat", "dog", "lion", "fox", "monkey", "panda", "raccoon", "tiger"}
