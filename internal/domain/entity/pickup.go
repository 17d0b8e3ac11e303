package entity

import (
	"image/color"
	"math"
)

// Fixed hazard and pickup dimensions
const (
	SpikeHeight     = 20
	CollectibleSize = 20
)

// Spike is a static hazard. Collision uses the whole rectangle,
// independent of how it is tiled visually.
type Spike struct {
	Rect
}

// Chaser is a hazard that slides horizontally toward the player
type Chaser struct {
	Rect
	Kind    ChaserKind
	Speed   float64
	OriginX float64
}

// NewChaser creates a chaser remembering its origin for resets
func NewChaser(r Rect, kind ChaserKind, speed float64) *Chaser {
	return &Chaser{Rect: r, Kind: kind, Speed: speed, OriginX: r.X}
}

// Reset returns the chaser to its origin
func (c *Chaser) Reset() {
	c.X = c.OriginX
}

// Collectible is a one-shot pickup. Collected items stay in their
// container and are filtered out by collision and rendering.
type Collectible struct {
	Rect
	Kind      CollectibleKind
	Collected bool
	BobOffset float64
}

// BobY returns the rendered vertical offset of the bob animation
func (c *Collectible) BobY() float64 {
	return math.Sin(c.BobOffset) * 5
}

// Teleporter moves the player to Target, then stays inert for Cooldown ticks.
type Teleporter struct {
	Rect
	Target     Point
	Cooldown   int
	Color      color.RGBA
	AnimOffset float64
}

// Ready reports whether the teleporter can fire
func (t *Teleporter) Ready() bool {
	return t.Cooldown == 0
}

// Pulse returns the rendered opacity for the glow animation
func (t *Teleporter) Pulse() float64 {
	return 0.7 + math.Sin(t.AnimOffset)*0.3
}

// Goal is the exit of a level
type Goal struct {
	Rect
}
