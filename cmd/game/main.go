// cyberguard is a cybersecurity themed 2D platformer.
//
// Usage:
//
//	cyberguard                 - Play the game
//	cyberguard levels          - List the loaded levels
//	cyberguard scores          - Show the best finished runs
//
// Global flags:
//
//	--config <dir>  - Load physics.yaml and levels/ from dir instead of the built-in set
//	--db <path>     - Set database path (default: ~/.cyberguard/scores.db)
//	--debug         - Enable debug logging
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/cyberguard/internal/application/game"
	"github.com/younwookim/cyberguard/internal/application/scene/playing"
	"github.com/younwookim/cyberguard/internal/infrastructure/config"
	"github.com/younwookim/cyberguard/internal/infrastructure/storage"
	"github.com/younwookim/cyberguard/internal/infrastructure/watch"
)

var (
	// Global flags
	flagConfigDir string
	flagDBPath    string
	flagDebug     bool

	// Play flags
	flagSeed   int64
	flagWatch  bool
	flagPlayer string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cyberguard",
	Short: "CyberGuard - defend the network one level at a time",
	Long: `CyberGuard is a side-scrolling platformer. Collect every security
tool in a level, then reach the exit before the malware gets you.

Controls:
  Arrows / WASD   Move
  Space / W / Up  Jump
  Enter           Start
  R               Restart
  Q               Give up
  Esc             Quit

Examples:
  cyberguard
  cyberguard --config ./configs --watch
  cyberguard levels
  cyberguard scores --limit 5`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory with physics.yaml and levels/ (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cyberguard/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels when files under --config change")
	rootCmd.Flags().StringVar(&flagPlayer, "player", defaultPlayerName(), "Name recorded with scores")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cyberguard",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newLoader reads from --config when set, otherwise from the embedded set
func newLoader() (*config.Loader, error) {
	if flagConfigDir != "" {
		return config.NewLoader(flagConfigDir), nil
	}
	sub, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded configs: %w", err)
	}
	return config.NewFSLoader(sub, "configs"), nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	loader, err := newLoader()
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Info("config loaded", "source", loader.BasePath(), "levels", cfg.Levels.Len())

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("rng seeded", "seed", seed)

	opts := []playing.Option{
		playing.WithLogger(logger),
		playing.WithRand(rand.New(rand.NewSource(seed))),
	}

	// Scores are optional: a broken database never blocks play
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores disabled", "db", flagDBPath, "error", err)
	} else {
		defer store.Close()
		opts = append(opts, playing.WithScores(store, flagPlayer))
	}

	if flagWatch {
		w, err := startWatcher(logger)
		if err != nil {
			logger.Warn("level watching disabled", "error", err)
		} else if w != nil {
			defer w.Close()
			opts = append(opts, playing.WithReload(w.Events, loader))
		}
	}

	display := cfg.Physics.Display
	scale := max(display.Scale, 1)
	ebiten.SetWindowSize(display.ScreenWidth*scale, display.ScreenHeight*scale)
	ebiten.SetWindowTitle("CyberGuard")
	ebiten.SetTPS(display.Framerate)

	g := game.New(playing.New(cfg, opts...), display.ScreenWidth, display.ScreenHeight,
		game.WithLogger(logger),
		game.WithTickRate(display.Framerate),
	)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logger.Info("bye")
	return nil
}

// startWatcher watches the level directory of --config. It returns nil
// without error when playing from the embedded set.
func startWatcher(logger *log.Logger) (*watch.Watcher, error) {
	if flagConfigDir == "" {
		logger.Warn("--watch needs --config, built-in levels cannot change")
		return nil, nil
	}

	dir := filepath.Join(flagConfigDir, "levels")
	w, err := watch.NewWatcher(dir)
	if err != nil {
		return nil, err
	}

	go func() {
		for err := range w.Errors {
			logger.Warn("level watch error", "error", err)
		}
	}()

	logger.Info("watching levels", "dir", dir)
	return w, nil
}

func defaultPlayerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
