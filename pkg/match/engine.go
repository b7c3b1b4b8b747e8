// Package match 实现记忆配对游戏的核心规则
//
// Engine 持有洗牌后的卡牌序列、当前翻开的卡牌和比较锁。
// 引擎不是并发安全的：它属于单个游戏循环，所有调用（包括延迟回调）
// 都应发生在该循环所在的线程上。
package match

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/decker502/memoris/pkg/logger"
	"github.com/decker502/memoris/pkg/timer"
	"github.com/decker502/memoris/pkg/utils"
)

// DefaultRevealDelay 不匹配时两张牌保持正面的时长
const DefaultRevealDelay = time.Second

// Options 引擎配置
type Options struct {
	// Faces 牌面列表，为空时使用 DefaultFaces
	Faces []string
	// RevealDelay 不匹配时翻回前的展示时长，<= 0 时翻回发生在下一次调度器更新
	RevealDelay time.Duration
	// Random 洗牌使用的随机源，为 nil 时按时间播种
	Random utils.Random
	// Scheduler 延迟回调调度器，为 nil 时引擎使用自带队列，需调用 Engine.Update 推进
	Scheduler timer.Scheduler
}

// Engine 记忆配对游戏引擎
type Engine struct {
	faces       []string
	revealDelay time.Duration
	rng         utils.Random
	scheduler   timer.Scheduler
	ownQueue    *timer.Queue

	cards     []Card
	flipped   []int // 已翻开但尚未结算的卡牌下标（0~2 个）
	locked    bool  // 正在比较两张牌
	phase     Phase
	moves     int
	won       bool
	roundID   string
	revert    *timer.Task // 等待中的翻回任务
	listeners []Listener

	log zerolog.Logger
}

// New 创建引擎并开始第一局
func New(opts Options) *Engine {
	faces := opts.Faces
	if len(faces) == 0 {
		faces = DefaultFaces
	}

	e := &Engine{
		faces:       append([]string(nil), faces...),
		revealDelay: opts.RevealDelay,
		rng:         opts.Random,
		scheduler:   opts.Scheduler,
		log:         logger.For("MatchEngine"),
	}
	if e.rng == nil {
		e.rng = utils.NewRandom(0)
	}
	if e.scheduler == nil {
		e.ownQueue = timer.NewQueue()
		e.scheduler = e.ownQueue
	}

	e.NewGame()
	return e
}

// Subscribe 注册事件监听器
func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

// Update 推进引擎自带的调度队列
// 使用外部 Scheduler 时为空操作（由外部负责推进）
func (e *Engine) Update(dt float64) {
	if e.ownQueue != nil {
		e.ownQueue.Update(dt)
	}
}

// NewGame 洗牌并开始新的一局
//
// 每个牌面复制两份后做均匀随机洗牌，重置翻牌与锁状态。
// 上一局尚未执行的翻回任务会被取消。
func (e *Engine) NewGame() {
	if e.revert.Pending() {
		e.log.Debug().Str("round", e.roundID).Msg("pending revert cancelled by new game")
	}
	e.revert.Cancel()
	e.revert = nil

	cards := make([]Card, 0, len(e.faces)*2)
	for _, f := range e.faces {
		cards = append(cards, Card{Face: f})
	}
	for _, f := range e.faces {
		cards = append(cards, Card{Face: f})
	}
	e.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	e.cards = cards
	e.flipped = e.flipped[:0]
	e.locked = false
	e.phase = PhaseIdle
	e.moves = 0
	e.won = false
	e.roundID = uuid.NewString()

	e.log.Debug().Str("round", e.roundID).Int("cards", len(cards)).Msg("new game")
	e.emit(Event{Type: EventNewGame, RoundID: e.roundID})
}

// Flip 翻开指定下标的卡牌
//
// 以下情况忽略并返回 false：
//   - 正在比较两张牌（锁已持有）
//   - 卡牌已经翻开或已配对
//   - 下标越界（调用方的契约错误，仅记录调试日志）
//
// 翻开第二张牌时立即进入比较阶段。
//
// 返回：
//   - bool: 翻牌是否被接受
func (e *Engine) Flip(index int) bool {
	if index < 0 || index >= len(e.cards) {
		e.log.Debug().Int("index", index).Msg("flip out of range ignored")
		return false
	}
	if e.locked || e.cards[index].State != FaceDown {
		return false
	}

	e.cards[index].State = FaceUp
	e.flipped = append(e.flipped, index)
	// 先完成状态切换再通知，监听器看到的锁与阶段和翻牌结果一致
	if len(e.flipped) < 2 {
		e.phase = PhaseOneFlipped
	} else {
		e.locked = true
		e.phase = PhaseChecking
	}
	e.emit(Event{
		Type:    EventFlipped,
		RoundID: e.roundID,
		Indices: []int{index},
		Face:    e.cards[index].Face,
		Moves:   e.moves,
	})

	if e.locked {
		e.evaluate(e.flipped[0], e.flipped[1])
	}
	return true
}

// evaluate 结算一对翻开的卡牌
//
// 牌面相同：两张牌立即标记为已配对，释放锁并检查胜利。
// 牌面不同：延迟 revealDelay 后翻回背面，再释放锁。
func (e *Engine) evaluate(a, b int) {
	e.moves++
	pair := []int{a, b}

	if e.cards[a].Face == e.cards[b].Face {
		e.cards[a].State = Matched
		e.cards[b].State = Matched
		e.release()

		e.log.Debug().Str("round", e.roundID).Str("face", e.cards[a].Face).
			Int("moves", e.moves).Msg("pair matched")
		e.emit(Event{Type: EventMatched, RoundID: e.roundID, Indices: pair, Face: e.cards[a].Face, Moves: e.moves})

		e.CheckWin()
		return
	}

	e.log.Debug().Str("round", e.roundID).Ints("pair", pair).Int("moves", e.moves).Msg("pair mismatched")
	e.emit(Event{Type: EventMismatched, RoundID: e.roundID, Indices: pair, Face: e.cards[a].Face, Moves: e.moves})

	e.revert = e.scheduler.After(e.revealDelay, func() {
		e.revert = nil
		e.cards[a].State = FaceDown
		e.cards[b].State = FaceDown
		e.release()
		e.emit(Event{Type: EventReverted, RoundID: e.roundID, Indices: pair, Moves: e.moves})
	})
}

// release 清空翻开集合并释放比较锁
func (e *Engine) release() {
	e.flipped = e.flipped[:0]
	e.locked = false
	e.phase = PhaseIdle
}

// CheckWin 检查是否所有卡牌都已配对
//
// 每局第一次返回 true 时进入 Won 阶段并发出 EventVictory。
func (e *Engine) CheckWin() bool {
	for _, c := range e.cards {
		if c.State != Matched {
			return false
		}
	}

	if !e.won {
		e.won = true
		e.phase = PhaseWon
		e.log.Info().Str("round", e.roundID).Int("moves", e.moves).Msg("victory")
		e.emit(Event{Type: EventVictory, RoundID: e.roundID, Moves: e.moves})
	}
	return true
}

func (e *Engine) emit(ev Event) {
	for _, l := range e.listeners {
		l(ev)
	}
}

// Cards 返回卡牌序列的副本
func (e *Engine) Cards() []Card {
	return append([]Card(nil), e.cards...)
}

// Card 返回指定下标的卡牌
func (e *Engine) Card(index int) Card {
	return e.cards[index]
}

// Len 返回卡牌数量
func (e *Engine) Len() int {
	return len(e.cards)
}

// Flipped 返回已翻开但未结算的卡牌下标
func (e *Engine) Flipped() []int {
	return append([]int(nil), e.flipped...)
}

// IsLocked 返回是否正在比较两张牌
func (e *Engine) IsLocked() bool {
	return e.locked
}

// Phase 返回当前状态机阶段
func (e *Engine) Phase() Phase {
	return e.phase
}

// Moves 返回本局已比较的对数
func (e *Engine) Moves() int {
	return e.moves
}

// MatchedPairs 返回已配对的对数
func (e *Engine) MatchedPairs() int {
	n := 0
	for _, c := range e.cards {
		if c.State == Matched {
			n++
		}
	}
	return n / 2
}

// RoundID 返回当前局的唯一标识
func (e *Engine) RoundID() string {
	return e.roundID
}

// Faces 返回牌面列表
func (e *Engine) Faces() []string {
	return append([]string(nil), e.faces...)
}
