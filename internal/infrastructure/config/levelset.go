package config

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNoLevels is returned when a level set has no level 1 to fall back to
	ErrNoLevels = errors.New("level set must contain level 1")
	// ErrInvalidLevel wraps every validation failure of a level file
	ErrInvalidLevel = errors.New("invalid level")
)

// DefaultSpawn is used when a level does not name a spawn point
var DefaultSpawn = PositionConfig{X: 50, Y: 400}

// LevelSet is an immutable collection of levels keyed by number
type LevelSet struct {
	levels map[int]*LevelConfig
}

// NewLevelSet indexes levels by number. Level 1 is required because
// lookups of unknown numbers fall back to it.
func NewLevelSet(levels ...*LevelConfig) (*LevelSet, error) {
	set := &LevelSet{levels: make(map[int]*LevelConfig, len(levels))}
	for _, lvl := range levels {
		if _, dup := set.levels[lvl.Number]; dup {
			return nil, fmt.Errorf("%w: duplicate level number %d", ErrInvalidLevel, lvl.Number)
		}
		set.levels[lvl.Number] = lvl
	}
	if _, ok := set.levels[1]; !ok {
		return nil, ErrNoLevels
	}
	return set, nil
}

// Lookup returns the level with the given number, or level 1 when the
// number is unknown. The returned number is the level actually used.
func (s *LevelSet) Lookup(number int) (*LevelConfig, int) {
	if lvl, ok := s.levels[number]; ok {
		return lvl, number
	}
	return s.levels[1], 1
}

// Numbers returns the level numbers in ascending order
func (s *LevelSet) Numbers() []int {
	nums := make([]int, 0, len(s.levels))
	for n := range s.levels {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// Len returns the number of levels
func (s *LevelSet) Len() int {
	return len(s.levels)
}

// SpawnPoint returns the level's spawn, falling back to DefaultSpawn
func (c *LevelConfig) SpawnPoint() PositionConfig {
	if c.Spawn == (PositionConfig{}) {
		return DefaultSpawn
	}
	return c.Spawn
}
