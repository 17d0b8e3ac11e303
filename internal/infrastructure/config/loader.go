package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Levels  *LevelSet
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads physics.yaml on top of the shipped defaults,
// so a file may override only the values it names.
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.yaml: %w", err)
	}

	cfg := DefaultPhysicsConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.yaml: %w", err)
	}

	return cfg, nil
}

// LoadLevel loads a single level file by number
func (l *Loader) LoadLevel(number int) (*LevelConfig, error) {
	return l.loadLevelFile(fmt.Sprintf("levels/level%d.yaml", number))
}

func (l *Loader) loadLevelFile(name string) (*LevelConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadLevels loads every levels/*.yaml file into a LevelSet
func (l *Loader) LoadLevels() (*LevelSet, error) {
	names, err := fs.Glob(l.fsys, path.Join("levels", "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}

	levels := make([]*LevelConfig, 0, len(names))
	for _, name := range names {
		cfg, err := l.loadLevelFile(name)
		if err != nil {
			return nil, err
		}
		levels = append(levels, cfg)
	}

	return NewLevelSet(levels...)
}

// LoadAll loads all base configurations (physics, levels)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	levels, err := l.LoadLevels()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		Levels:  levels,
	}, nil
}
