// Package playing provides the gameplay scene: start screen, levels and
// the end screens of a session.
package playing

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/cyberguard/internal/application/message"
	"github.com/younwookim/cyberguard/internal/application/scene"
	"github.com/younwookim/cyberguard/internal/application/session"
	"github.com/younwookim/cyberguard/internal/application/state"
	"github.com/younwookim/cyberguard/internal/application/system"
	"github.com/younwookim/cyberguard/internal/infrastructure/config"
	"github.com/younwookim/cyberguard/internal/infrastructure/storage"
)

// ScoreSaver persists finished runs
type ScoreSaver interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
}

// LevelSource reloads the level set after a file change
type LevelSource interface {
	LoadLevels() (*config.LevelSet, error)
}

// Controls are the per-tick button presses the scene reacts to
type Controls struct {
	Move    system.InputState
	Start   bool
	Restart bool
	GiveUp  bool
	Exit    bool
}

// Playing is the main gameplay scene
type Playing struct {
	config      *config.GameConfig
	session     *session.Session
	board       *message.Board
	inputSystem *system.InputSystem
	logger      *log.Logger
	screenW     int
	screenH     int

	store      ScoreSaver
	playerName string
	saved      bool

	changes <-chan string
	source  LevelSource
}

// Option configures a Playing scene
type Option func(*options)

type options struct {
	logger     *log.Logger
	rng        *rand.Rand
	now        func() time.Time
	store      ScoreSaver
	playerName string
	changes    <-chan string
	source     LevelSource
}

// WithLogger sets the logger shared with the session
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRand seeds tips and animation phases
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithClock replaces the wall clock for timers and messages
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithScores records every won run in store under the given player name
func WithScores(store ScoreSaver, player string) Option {
	return func(o *options) {
		o.store = store
		o.playerName = player
	}
}

// WithReload rebuilds the level set from source whenever a name
// arrives on changes
func WithReload(changes <-chan string, source LevelSource) Option {
	return func(o *options) {
		o.changes = changes
		o.source = source
	}
}

// New creates a new Playing scene on the start screen
func New(cfg *config.GameConfig, opts ...Option) *Playing {
	o := options{
		logger: log.New(io.Discard),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	board := message.NewBoard(cfg.Physics.UI.MessageDuration).WithClock(o.now)
	sess := session.New(cfg.Physics, cfg.Levels,
		session.WithLogger(o.logger),
		session.WithMessenger(board),
		session.WithRand(o.rng),
		session.WithClock(o.now),
	)

	return &Playing{
		config:      cfg,
		session:     sess,
		board:       board,
		inputSystem: system.NewInputSystem(cfg.Physics),
		logger:      o.logger,
		screenW:     cfg.Physics.Display.ScreenWidth,
		screenH:     cfg.Physics.Display.ScreenHeight,
		store:       o.store,
		playerName:  o.playerName,
		changes:     o.changes,
		source:      o.source,
	}
}

// Session returns the scene's session
func (p *Playing) Session() *session.Session {
	return p.session
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.drainReloads()
	return nil, p.step(p.pollControls())
}

func (p *Playing) pollControls() Controls {
	return Controls{
		Move:    p.inputSystem.Poll(),
		Start:   inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		GiveUp:  inpututil.IsKeyJustPressed(ebiten.KeyQ),
		Exit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// step applies one tick of controls. It returns ebiten.Termination on exit.
func (p *Playing) step(c Controls) error {
	if c.Exit {
		p.logger.Info("exit requested", "score", p.session.Score, "level", p.session.Level)
		return ebiten.Termination
	}

	switch s := p.session.State; {
	case s == state.StateStart:
		if c.Start {
			p.session.Start()
		}
	case s == state.StatePlaying:
		if c.Restart {
			p.restart()
			return nil
		}
		if c.GiveUp {
			p.session.GameOver()
			return nil
		}
		p.session.Tick(c.Move)
		if p.session.State == state.StateGameWin {
			p.saveScore()
		}
	case s.Finished():
		if c.Restart {
			p.restart()
		}
	}
	return nil
}

func (p *Playing) restart() {
	p.board.Clear()
	p.session.Restart()
	p.saved = false
}

// saveScore stores the run once. Storage problems never stop the game.
func (p *Playing) saveScore() {
	if p.store == nil || p.saved {
		return
	}
	p.saved = true

	entry := storage.ScoreEntry{
		Player:  p.playerName,
		Score:   p.session.Score,
		Level:   p.session.MaxLevel,
		Elapsed: p.session.Elapsed,
	}
	id, err := p.store.SaveScore(entry)
	if err != nil {
		p.logger.Error("could not save score", "error", err)
		return
	}
	p.logger.Info("score saved", "id", id, "player", entry.Player, "score", entry.Score)
}

// drainReloads applies pending level file changes without blocking.
// Bursts of changes collapse into one reload.
func (p *Playing) drainReloads() {
	if p.changes == nil {
		return
	}

	changed := ""
drain:
	for {
		select {
		case name, ok := <-p.changes:
			if !ok {
				p.changes = nil
				break drain
			}
			changed = name
		default:
			break drain
		}
	}
	if changed == "" {
		return
	}

	levels, err := p.source.LoadLevels()
	if err != nil {
		p.logger.Warn("level reload failed, keeping current levels", "file", changed, "error", err)
		p.board.Show("Level reload failed")
		return
	}
	p.session.ReloadLevels(levels)
	p.board.Show("Levels reloaded")
}

// OnEnter is called when the scene becomes active
func (p *Playing) OnEnter() {
	p.logger.Debug("entered playing scene", "levels", p.config.Levels.Len())
}

// OnExit is called when the scene is left
func (p *Playing) OnExit() {
	p.logger.Debug("left playing scene")
}
