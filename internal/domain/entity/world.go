package entity

// Solid is a platform surface taking part in collision this tick.
// Mover is set when the surface belongs to a moving platform.
type Solid struct {
	Rect
	Mover *MovingPlatform
}

// World holds every live entity of one level.
// It is rebuilt from configuration on each level load and never shared.
type World struct {
	Level int
	Spawn Point

	Platforms             []*Platform
	MovingPlatforms       []*MovingPlatform
	FallingPlatforms      []*FallingPlatform
	DisappearingPlatforms []*DisappearingPlatform

	Enemies      []*Enemy
	Spikes       []*Spike
	Chasers      []*Chaser
	Collectibles []*Collectible
	Teleporters  []*Teleporter
	Goal         *Goal
}

// Solids returns every platform surface that currently collides:
// static, moving, not-yet-falling falling, and visible disappearing platforms.
func (w *World) Solids() []Solid {
	solids := make([]Solid, 0, len(w.Platforms)+len(w.MovingPlatforms)+
		len(w.FallingPlatforms)+len(w.DisappearingPlatforms))

	for _, p := range w.Platforms {
		solids = append(solids, Solid{Rect: p.Rect})
	}
	for _, p := range w.MovingPlatforms {
		solids = append(solids, Solid{Rect: p.Rect, Mover: p})
	}
	for _, p := range w.FallingPlatforms {
		if p.IsSolid() {
			solids = append(solids, Solid{Rect: p.Rect})
		}
	}
	for _, p := range w.DisappearingPlatforms {
		if p.Visible {
			solids = append(solids, Solid{Rect: p.Rect})
		}
	}
	return solids
}

// TotalCollectibles returns the number of collectibles in the level
func (w *World) TotalCollectibles() int {
	return len(w.Collectibles)
}

// ResetChasers returns every chaser to its origin
func (w *World) ResetChasers() {
	for _, c := range w.Chasers {
		c.Reset()
	}
}
