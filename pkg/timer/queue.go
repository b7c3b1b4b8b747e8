// Package timer 提供基于帧时钟的延迟任务队列
//
// 队列不启动任何 goroutine：所有者在自己的循环里调用 Update(dt) 推进时间，
// 到期的回调在调用 Update 的同一线程上同步执行。
// 因此回调可以安全地修改所有者的状态，无需额外加锁。
package timer

import "time"

// Task 已调度的延迟任务句柄
type Task struct {
	id       uint64
	due      float64 // 到期时间（队列时钟，秒）
	fn       func()
	canceled bool
	fired    bool
}

// Cancel 取消任务
// 对已执行或已取消的任务调用无副作用
func (t *Task) Cancel() {
	if t != nil {
		t.canceled = true
	}
}

// Pending 返回任务是否仍在等待执行
func (t *Task) Pending() bool {
	return t != nil && !t.canceled && !t.fired
}

// Scheduler 延迟回调调度接口
// match 引擎通过此接口安排"翻回背面"等延迟动作
type Scheduler interface {
	After(delay time.Duration, fn func()) *Task
}

// Queue 帧驱动的延迟任务队列
type Queue struct {
	now    float64 // 队列时钟（秒）
	nextID uint64
	tasks  []*Task
}

// NewQueue 创建空的任务队列
func NewQueue() *Queue {
	return &Queue{}
}

// After 安排 fn 在 delay 之后执行
//
// delay <= 0 的任务在下一次 Update 时执行（不会在 After 内同步执行）。
//
// 参数：
//   - delay: 延迟时长
//   - fn: 到期回调
//
// 返回：
//   - *Task: 可用于取消的任务句柄
func (q *Queue) After(delay time.Duration, fn func()) *Task {
	q.nextID++
	task := &Task{
		id:  q.nextID,
		due: q.now + delay.Seconds(),
		fn:  fn,
	}
	q.tasks = append(q.tasks, task)
	return task
}

// Update 推进队列时钟并执行所有到期任务
//
// 任务按到期时间、再按调度顺序执行。回调中新安排的任务
// 如果同样已经到期，会在本次 Update 中继续执行。
//
// 参数：
//   - dt: 距离上次更新经过的时间（秒）
func (q *Queue) Update(dt float64) {
	q.now += dt

	for {
		next := q.popDue()
		if next == nil {
			return
		}
		next.fired = true
		next.fn()
	}
}

// popDue 取出最早到期的任务，没有到期任务时返回 nil
func (q *Queue) popDue() *Task {
	best := -1
	alive := q.tasks[:0]
	for _, t := range q.tasks {
		if t.canceled {
			continue
		}
		alive = append(alive, t)
	}
	// 清理已取消的任务，避免队列无限增长
	for i := len(alive); i < len(q.tasks); i++ {
		q.tasks[i] = nil
	}
	q.tasks = alive

	for i, t := range q.tasks {
		if t.due > q.now {
			continue
		}
		if best < 0 || t.due < q.tasks[best].due ||
			(t.due == q.tasks[best].due && t.id < q.tasks[best].id) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}

	task := q.tasks[best]
	q.tasks = append(q.tasks[:best], q.tasks[best+1:]...)
	return task
}

// Len 返回等待中的任务数量
func (q *Queue) Len() int {
	n := 0
	for _, t := range q.tasks {
		if !t.canceled {
			n++
		}
	}
	return n
}

// Clear 取消所有等待中的任务
func (q *Queue) Clear() {
	for _, t := range q.tasks {
		t.canceled = true
	}
	q.tasks = q.tasks[:0]
}

// Now 返回队列时钟（秒）
func (q *Queue) Now() float64 {
	return q.now
}
