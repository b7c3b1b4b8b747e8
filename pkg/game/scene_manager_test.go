package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	activated    int
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// OnActivate counts activations.
func (m *MockScene) OnActivate() {
	m.activated++
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.GetCurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
	if mockScene.activated != 1 {
		t.Errorf("Expected OnActivate to be called once, got %d", mockScene.activated)
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update and Draw handle nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(16, 16))
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(ebiten.NewImage(16, 16))

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerLoadCachesScenes verifies named scenes are created once and reused.
func TestSceneManagerLoadCachesScenes(t *testing.T) {
	sm := NewSceneManager()
	created := 0
	sm.Register("match", func() Scene {
		created++
		return &MockScene{}
	})

	if !sm.Load("match") {
		t.Fatal("Load(match) returned false")
	}
	first := sm.GetCurrentScene()
	if !sm.Load("match") {
		t.Fatal("second Load(match) returned false")
	}

	if created != 1 {
		t.Errorf("Expected factory to run once, ran %d times", created)
	}
	if sm.GetCurrentScene() != first {
		t.Error("Expected cached scene instance to be reused")
	}
	if first.(*MockScene).activated != 2 {
		t.Errorf("Expected 2 activations, got %d", first.(*MockScene).activated)
	}
	if sm.CurrentName() != "match" {
		t.Errorf("Expected current name match, got %q", sm.CurrentName())
	}
}

// TestSceneManagerLoadUnknown verifies unknown or nil scenes do not replace the active scene.
func TestSceneManagerLoadUnknown(t *testing.T) {
	sm := NewSceneManager()
	active := &MockScene{}
	sm.SwitchTo(active)
	sm.Register("broken", func() Scene { return nil })

	if sm.Load("missing") {
		t.Error("Load(missing) should fail")
	}
	if sm.Load("broken") {
		t.Error("Load(broken) should fail")
	}
	if sm.GetCurrentScene() != active {
		t.Error("Active scene should be unchanged after failed loads")
	}
}

// TestSceneManagerNext verifies Next cycles in registration order.
func TestSceneManagerNext(t *testing.T) {
	sm := NewSceneManager()
	if sm.Next() {
		t.Error("Next with no registered scenes should fail")
	}

	sm.Register("match", func() Scene { return &MockScene{} })
	sm.Register("snow", func() Scene { return &MockScene{} })

	want := []string{"match", "snow", "match"}
	for i, name := range want {
		if !sm.Next() {
			t.Fatalf("step %d: Next returned false", i)
		}
		if sm.CurrentName() != name {
			t.Errorf("step %d: expected %q, got %q", i, name, sm.CurrentName())
		}
	}
}
