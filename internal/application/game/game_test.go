package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/stickwalk/internal/application/scene"
	"github.com/younwookim/stickwalk/internal/infrastructure/config"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update() (scene.Scene, error) {
	m.updateCalled++
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

var testDisplay = config.DisplayConfig{ScreenWidth: 320, ScreenHeight: 240, Scale: 1, Framerate: 60}

func TestNew(t *testing.T) {
	initial := &mockScene{}
	g := New(initial, testDisplay)

	assert.NotNil(t, g)
	assert.Equal(t, 1, initial.onEnterCalled, "OnEnter should be called on initial scene")
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{}, testDisplay)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene2 := &mockScene{}
	scene1 := &mockScene{nextScene: scene2}

	g := New(scene1, testDisplay)

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, scene1.updateCalled)
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
	assert.Equal(t, 2, g.Ticks())
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{}
	g := New(scene1, testDisplay)

	for i := 0; i < 5; i++ {
		assert.NoError(t, g.Update())
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	g := New(&mockScene{updateErr: assert.AnError}, testDisplay)

	err := g.Update()
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGame_QuitTerminates(t *testing.T) {
	s := &mockScene{updateErr: scene.ErrQuit}
	g := New(s, testDisplay)

	err := g.Update()
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, 1, s.onExitCalled)
}
