package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// tickInterval 配对模式下推进翻回计时的频率
const tickInterval = 50 * time.Millisecond

// eventLoop 在单个 goroutine 中处理按键、定时推进和重绘
//
// 所有对 view 的调用都发生在这里，因此 view 本身不需要加锁。
func eventLoop(screen tcell.Screen, v view) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// 屏幕已关闭
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	last := time.Now()

	v.Draw(screen)
	screen.Show()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventInterrupt:
				// 后台帧完成，下面统一重绘
			}
		case now := <-ticker.C:
			v.Tick(now.Sub(last).Seconds())
			last = now
		}
		v.Draw(screen)
		screen.Show()
	}
}
