// Package session owns one play-through: the current level's world, the
// player, scoring and the level progression state machine.
package session

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/cyberguard/internal/application/state"
	"github.com/younwookim/cyberguard/internal/application/system"
	"github.com/younwookim/cyberguard/internal/domain/entity"
	"github.com/younwookim/cyberguard/internal/infrastructure/config"
)

// trickDelay is how many ticks after a level starts its hint is shown
const trickDelay = 60

// Messenger receives the transient status messages a session produces
type Messenger interface {
	Show(text string)
}

type discardMessages struct{}

func (discardMessages) Show(string) {}

// Session is mutated only from the game loop. Fields are exported for
// reading by the renderer; change them through the methods.
type Session struct {
	config   *config.PhysicsConfig
	levels   *config.LevelSet
	logger   *log.Logger
	messages Messenger
	rng      *rand.Rand
	now      func() time.Time

	input        *system.InputSystem
	physics      *system.PhysicsSystem
	enemies      *system.EnemySystem
	platforms    *system.PlatformSystem
	interactions *system.InteractionSystem

	State     state.GameState
	Level     int
	MaxLevel  int
	Score     int
	Collected int
	Total     int
	Frame     int
	StartTime time.Time
	Elapsed   time.Duration

	Camera   system.Camera
	Viewport system.Viewport
	World    *entity.World
	Player   *entity.Player

	pendingTrick string
	trickTimer   int
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger for level and state transitions
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithMessenger sets the sink for status messages
func WithMessenger(m Messenger) Option {
	return func(s *Session) { s.messages = m }
}

// WithRand sets the random source for tips and animation phases
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithClock replaces the wall clock used for the elapsed timer
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a session waiting on the start screen with level 1 loaded
func New(cfg *config.PhysicsConfig, levels *config.LevelSet, opts ...Option) *Session {
	physics := system.NewPhysicsSystem(cfg)
	s := &Session{
		config:       cfg,
		levels:       levels,
		logger:       log.New(io.Discard),
		messages:     discardMessages{},
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		now:          time.Now,
		input:        system.NewInputSystem(cfg),
		physics:      physics,
		enemies:      system.NewEnemySystem(cfg, physics),
		platforms:    system.NewPlatformSystem(cfg, physics),
		interactions: system.NewInteractionSystem(cfg),
		State:        state.StateStart,
		Level:        1,
		MaxLevel:     cfg.Session.MaxLevel,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.loadLevel(s.Level)
	s.Player = entity.NewPlayer(s.World.Spawn)
	s.StartTime = s.now()
	s.Viewport = system.NewViewport(s.Camera, cfg)
	return s
}

// Start leaves the start screen
func (s *Session) Start() {
	if s.State != state.StateStart {
		return
	}
	s.StartTime = s.now()
	s.setState(state.StatePlaying)
}

// Restart begins a fresh play-through from level 1
func (s *Session) Restart() {
	s.Score = 0
	s.Level = 1
	s.Frame = 0
	s.Elapsed = 0
	s.loadLevel(s.Level)
	s.Player.Respawn(s.World.Spawn, 0)
	s.Camera.Reset()
	s.StartTime = s.now()
	s.setState(state.StatePlaying)
}

// GameOver ends the session without a win
func (s *Session) GameOver() {
	s.setState(state.StateGameOver)
}

// ReloadLevels swaps the level source and rebuilds the current level.
// Score and level number are kept; the player returns to the spawn point.
func (s *Session) ReloadLevels(levels *config.LevelSet) {
	s.levels = levels
	s.loadLevel(s.Level)
	s.Player.Respawn(s.World.Spawn, 0)
	s.logger.Info("levels reloaded", "level", s.Level, "count", levels.Len())
}

// Progress returns the collection state of the current level
func (s *Session) Progress() system.Progress {
	return system.Progress{Collected: s.Collected, Total: s.Total}
}

// ElapsedString formats the elapsed play time as m:ss
func (s *Session) ElapsedString() string {
	secs := int(s.Elapsed / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Tick advances the simulation by one frame. It does nothing unless playing.
func (s *Session) Tick(input system.InputState) {
	if s.State != state.StatePlaying {
		return
	}

	s.Frame++
	s.Elapsed = s.now().Sub(s.StartTime)
	s.Viewport = system.NewViewport(s.Camera, s.config)
	s.tickTrick()

	s.input.UpdatePlayer(s.Player, input)

	solids := s.World.Solids()
	if s.physics.Step(&s.Player.Body, solids, s.config.Physics.FallMargin) {
		s.respawn()
	}

	for _, e := range s.World.Enemies {
		if s.Viewport.Visible(e.Rect) {
			s.enemies.Update(e, solids)
		}
	}

	s.platforms.Update(s.World, s.Player)

	for _, ev := range s.interactions.Resolve(s.World, s.Player, s.Viewport, s.Progress()) {
		s.apply(ev)
	}

	s.Camera.Follow(s.Player, s.config)

	if s.Player.Invulnerable > 0 {
		s.Player.Invulnerable--
	}
}

func (s *Session) apply(ev system.Event) {
	switch ev := ev.(type) {
	case system.RespawnEvent:
		s.respawn()
	case system.CollectEvent:
		s.Collected++
		s.Score += s.config.Scoring.CollectibleReward
		s.messages.Show(ev.Kind.Tip(s.rng))
		s.logger.Debug("collected", "kind", ev.Kind, "collected", s.Collected, "total", s.Total)
	case system.TeleportEvent:
		s.messages.Show("Teleported!")
	case system.GoalEvent:
		if ev.Complete {
			s.nextLevel()
			return
		}
		s.messages.Show(fmt.Sprintf("Need %d more items!", ev.Remaining))
	}
}

func (s *Session) respawn() {
	s.Player.Respawn(s.World.Spawn, s.config.Player.InvulnerableTicks)
	s.World.ResetChasers()
	s.messages.Show("Respawned!")
	s.logger.Debug("player respawned", "level", s.Level)
}

func (s *Session) nextLevel() {
	s.Level++
	s.Score += s.config.Scoring.LevelBonus

	if s.Level > s.MaxLevel {
		s.setState(state.StateGameWin)
		return
	}

	s.messages.Show(fmt.Sprintf("Level %d Starting!", s.Level))
	s.loadLevel(s.Level)
	s.Player.SetPos(s.World.Spawn.X, s.World.Spawn.Y)
	s.Player.Stop()
}

// loadLevel replaces the world. Unknown numbers build level 1 but keep
// the number the session asked for.
func (s *Session) loadLevel(n int) {
	s.World = system.GenerateLevel(s.levels, n, s.rng)
	s.Collected = 0
	s.Total = s.World.TotalCollectibles()

	cfg, _ := s.levels.Lookup(n)
	s.pendingTrick = cfg.Trick
	s.trickTimer = trickDelay

	s.logger.Info("level loaded", "level", n, "built", s.World.Level, "name", cfg.Name, "collectibles", s.Total)
}

func (s *Session) tickTrick() {
	if s.pendingTrick == "" {
		return
	}
	s.trickTimer--
	if s.trickTimer <= 0 {
		s.messages.Show(s.pendingTrick)
		s.pendingTrick = ""
	}
}

func (s *Session) setState(next state.GameState) {
	if s.State == next {
		return
	}
	s.logger.Info("state changed", "from", s.State, "to", next, "level", s.Level, "score", s.Score)
	s.State = next
}
