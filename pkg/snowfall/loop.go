package snowfall

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/decker502/memoris/pkg/logger"
	"github.com/decker502/memoris/pkg/render"
)

// Loop 以固定间隔驱动 Simulator 的后台循环
//
// 每一帧在互斥锁内执行 Tick，完成后调用 onFrame 通知表现层重绘；
// Render 持有同一把锁，因此重绘看到的总是完整的一帧，Tick 之间也不会重叠。
// 取消 Run 的 context 或调用 Stop 后循环退出，不会留下更新到一半的状态。
type Loop struct {
	mu       sync.Mutex
	sim      *Simulator
	interval time.Duration
	onFrame  func()

	frames  uint64
	paused  bool
	started bool
	cancel  context.CancelFunc
	done    chan struct{}

	log zerolog.Logger
}

// NewLoop 创建循环
//
// 参数：
//   - sim: 被驱动的模拟器（Loop 运行期间只能通过 Loop 访问）
//   - interval: 帧间隔，<= 0 时使用 16ms
//   - onFrame: 每帧更新完成后的回调，可为 nil
func NewLoop(sim *Simulator, interval time.Duration, onFrame func()) *Loop {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &Loop{
		sim:      sim,
		interval: interval,
		onFrame:  onFrame,
		done:     make(chan struct{}),
		log:      logger.For("SnowfallLoop"),
	}
}

// Start 在新的 goroutine 中运行循环
// Loop 只能运行一次：已经启动（包括通过 Run）后再调用为空操作
func (l *Loop) Start(ctx context.Context) {
	ctx, ok := l.begin(ctx)
	if !ok {
		l.log.Debug().Msg("loop already started, Start ignored")
		return
	}
	go l.run(ctx)
}

// Run 阻塞运行循环，直到 ctx 被取消或调用 Stop
// 循环已经启动时立即返回
func (l *Loop) Run(ctx context.Context) {
	ctx, ok := l.begin(ctx)
	if !ok {
		l.log.Debug().Msg("loop already started, Run ignored")
		return
	}
	l.run(ctx)
}

// begin 在锁内把循环标记为已启动并记录取消函数
func (l *Loop) begin(ctx context.Context) (context.Context, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return nil, false
	}
	ctx, l.cancel = context.WithCancel(ctx)
	l.started = true
	return ctx, true
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.log.Debug().Dur("interval", l.interval).Msg("loop started")
	for {
		select {
		case <-ctx.Done():
			l.log.Debug().Uint64("frames", l.Frames()).Msg("loop stopped")
			return
		case <-ticker.C:
			if l.Step() && l.onFrame != nil {
				l.onFrame()
			}
		}
	}
}

// Stop 停止循环并等待其退出
// 尚未启动时为空操作（之后仍可 Start）；可重复调用
func (l *Loop) Stop() {
	l.mu.Lock()
	started, cancel := l.started, l.cancel
	l.mu.Unlock()
	if !started {
		return
	}
	cancel()
	<-l.done
}

// Done 返回循环退出时关闭的通道
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Step 同步推进一帧，暂停时不推进
//
// 返回：
//   - bool: 是否执行了 Tick
func (l *Loop) Step() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.paused {
		return false
	}
	l.sim.Tick()
	l.frames++
	return true
}

// Render 在锁内绘制当前帧
func (l *Loop) Render(c render.Canvas) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sim.Render(c)
}

// Resize 在锁内调整视图尺寸
func (l *Loop) Resize(width, height int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sim.Resize(width, height)
}

// Reset 在锁内重新初始化模拟器（清空积雪）
func (l *Loop) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	w, h := l.sim.Size()
	l.sim.Init(w, h)
}

// SetPaused 暂停或恢复模拟
func (l *Loop) SetPaused(paused bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paused = paused
}

// Paused 返回是否暂停
func (l *Loop) Paused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paused
}

// Frames 返回已推进的帧数
func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

// Stats 返回当前峰值与落地次数
func (l *Loop) Stats() (peak float64, landings int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sim.Peak(), l.sim.Landings()
}
