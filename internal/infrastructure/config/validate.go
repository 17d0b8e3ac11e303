package config

import (
	"errors"
	"fmt"
)

// Validate checks structural problems of a level and reports all of them.
func (c *LevelConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidLevel}, args...)...))
	}

	if c.Number <= 0 {
		add("number must be positive, got %d", c.Number)
	}
	if c.Goal.Width <= 0 || c.Goal.Height <= 0 {
		add("goal must have a positive size")
	}
	for i, p := range c.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			add("platform %d must have a positive size", i)
		}
	}
	for i, p := range c.MovingPlatforms {
		if p.Width <= 0 || p.Height <= 0 {
			add("moving platform %d must have a positive size", i)
		}
	}
	for i, p := range c.FallingPlatforms {
		if p.FallDelay < 0 {
			add("falling platform %d has negative fallDelay", i)
		}
	}
	for i, s := range c.Spikes {
		if s.Width <= 0 {
			add("spike %d must have a positive width", i)
		}
	}
	for i, t := range c.Teleporters {
		if t.Width <= 0 || t.Height <= 0 {
			add("teleporter %d must have a positive size", i)
		}
		if _, err := ParseHexColor(t.Color); err != nil {
			add("teleporter %d: %v", i, err)
		}
	}

	return errors.Join(errs...)
}
