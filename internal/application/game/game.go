// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/cyberguard/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	logger  *log.Logger
}

// Option configures a Game
type Option func(*Game)

// WithLogger sets the logger for scene transitions and loop errors
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithTickRate sets the nominal ticks per second passed to scenes as dt
func WithTickRate(tps int) Option {
	return func(g *Game) {
		if tps > 0 {
			g.dt = 1.0 / float64(tps)
		}
	}
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, opts ...Option) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		if !errors.Is(err, ebiten.Termination) {
			g.logger.Error("scene update failed", "scene", sceneName(g.current), "error", err)
		}
		return err
	}

	if next != nil {
		g.logger.Debug("scene transition", "from", sceneName(g.current), "to", sceneName(next))
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close leaves the current scene. Call it once after the loop returns.
func (g *Game) Close() {
	g.current.OnExit()
}

func sceneName(s scene.Scene) string {
	return fmt.Sprintf("%T", s)
}
