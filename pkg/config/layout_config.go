package config

// 布局配置常量
// 所有坐标使用逻辑屏幕坐标，Ebitengine 负责缩放到实际窗口
const (
	// GameWindowWidth 逻辑屏幕宽度
	// 4 列 200 宽的牌加 5 个 10 像素间距为 850，两侧各留 25
	GameWindowWidth = 900

	// GameWindowHeight 逻辑屏幕高度
	// 4 行 280 高的牌加间距为 1170，上方留出 HUD
	GameWindowHeight = 1300

	// WindowScale 桌面窗口相对逻辑屏幕的初始缩放
	WindowScale = 0.6

	// HUDHeight 顶部信息栏高度（步数、配对数、按钮）
	HUDHeight = 100.0

	// BoardPadding 牌桌与屏幕边缘的最小距离
	BoardPadding = 10.0

	// ButtonWidth, ButtonHeight 胜利弹窗与 HUD 按钮尺寸
	ButtonWidth  = 180.0
	ButtonHeight = 60.0

	// DialogWidth, DialogHeight 胜利弹窗尺寸
	DialogWidth  = 560.0
	DialogHeight = 320.0

	// FlipAnimationSeconds 翻牌动画时长
	FlipAnimationSeconds = 0.18

	// OverlayFadeSeconds 胜利弹窗淡入时长
	OverlayFadeSeconds = 0.35
)

// BoardArea 返回牌桌可用区域（HUD 以下，扣除边距）
func BoardArea() (x, y, w, h float64) {
	x = BoardPadding
	y = HUDHeight
	w = GameWindowWidth - 2*BoardPadding
	h = GameWindowHeight - HUDHeight - BoardPadding
	return x, y, w, h
}

// WindowSize 返回桌面窗口初始尺寸
func WindowSize() (int, int) {
	return int(GameWindowWidth * WindowScale), int(GameWindowHeight * WindowScale)
}
