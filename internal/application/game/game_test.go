package game

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/cyberguard/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        float64
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.lastDT = dt
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

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 800, 600)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 800, 600)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
	assert.InDelta(t, 1.0/60.0, mockInitial.lastDT, 1e-12)
}

func TestGame_TickRate(t *testing.T) {
	tests := []struct {
		name   string
		tps    int
		wantDT float64
	}{
		{"thirty", 30, 1.0 / 30.0},
		{"zero keeps default", 0, 1.0 / 60.0},
		{"negative keeps default", -5, 1.0 / 60.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &mockScene{}
			g := New(s, 800, 600, WithTickRate(tt.tps))

			assert.NoError(t, g.Update())
			assert.InDelta(t, tt.wantDT, s.lastDT, 1e-12)
		})
	}
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 800, 600)

	img := ebiten.NewImage(800, 600)
	g.Draw(img)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 800, 600)

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestGame_SceneTransition(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	scene1 := &mockScene{}
	scene2 := &mockScene{}
	scene1.nextScene = scene2

	g := New(scene1, 800, 600, WithLogger(logger))
	assert.Equal(t, 1, scene1.onEnterCalled, "Initial scene OnEnter called")

	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")
	assert.Contains(t, buf.String(), "scene transition")

	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{nextScene: nil}

	g := New(scene1, 800, 600)

	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	var buf bytes.Buffer
	scene1 := &mockScene{updateErr: assert.AnError}

	g := New(scene1, 800, 600, WithLogger(log.New(&buf)))

	err := g.Update()
	assert.ErrorIs(t, err, assert.AnError, "Error should propagate from scene")
	assert.Contains(t, buf.String(), "scene update failed")
}

func TestGame_TerminationIsNotLogged(t *testing.T) {
	var buf bytes.Buffer
	scene1 := &mockScene{updateErr: ebiten.Termination}

	g := New(scene1, 800, 600, WithLogger(log.New(&buf)))

	err := g.Update()
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Empty(t, buf.String())
}

func TestGame_Close(t *testing.T) {
	s := &mockScene{}
	g := New(s, 800, 600)

	g.Close()

	assert.Equal(t, 1, s.onExitCalled)
}
