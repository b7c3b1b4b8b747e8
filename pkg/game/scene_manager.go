package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/decker502/memoris/pkg/logger"
)

// SceneFactory 场景工厂函数类型
// 场景在第一次切换到时才创建，避免启动时构造所有场景
type SceneFactory func() Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 场景按名字注册，创建后缓存，切换回来时保留原有状态（例如未完成的牌局）。
type SceneManager struct {
	currentScene Scene
	currentName  string

	order     []string
	factories map[string]SceneFactory
	scenes    map[string]Scene

	log zerolog.Logger
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Load to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[string]SceneFactory),
		scenes:    make(map[string]Scene),
		log:       logger.For("SceneManager"),
	}
}

// Register 注册命名场景，重复注册会覆盖工厂并丢弃已缓存的实例
func (sm *SceneManager) Register(name string, factory SceneFactory) {
	if _, exists := sm.factories[name]; !exists {
		sm.order = append(sm.order, name)
	}
	sm.factories[name] = factory
	delete(sm.scenes, name)
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	sm.currentName = ""
	if a, ok := scene.(Activatable); ok {
		a.OnActivate()
	}
}

// Load 切换到指定名字的场景
//
// 参数：
//   - name: 注册时使用的场景名
//
// 返回：
//   - bool: 场景是否存在并切换成功
func (sm *SceneManager) Load(name string) bool {
	scene, ok := sm.scenes[name]
	if !ok {
		factory, registered := sm.factories[name]
		if !registered {
			sm.log.Warn().Str("scene", name).Msg("scene not registered")
			return false
		}
		scene = factory()
		if scene == nil {
			sm.log.Error().Str("scene", name).Msg("factory returned nil scene")
			return false
		}
		sm.scenes[name] = scene
	}

	sm.SwitchTo(scene)
	sm.currentName = name
	sm.log.Debug().Str("scene", name).Msg("switched scene")
	return true
}

// Next 按注册顺序切换到下一个场景（循环）
func (sm *SceneManager) Next() bool {
	if len(sm.order) == 0 {
		return false
	}
	next := sm.order[0]
	for i, name := range sm.order {
		if name == sm.currentName {
			next = sm.order[(i+1)%len(sm.order)]
			break
		}
	}
	return sm.Load(next)
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回当前场景名，直接通过 SwitchTo 设置的场景返回空串
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
