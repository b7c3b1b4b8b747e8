package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., the card table or the snowfall view).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Activatable 是一个可选接口，场景在被切换到前台时收到通知
//
// 场景被缓存复用，切回时调用 OnActivate()，
// 例如飘雪场景借此按当前屏幕尺寸重建积雪。
type Activatable interface {
	OnActivate()
}
