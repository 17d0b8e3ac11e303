package entity

import "math"

// PhaseRate converts a moving platform's offset accumulator to radians
const PhaseRate = 0.02

// Platform is a static solid rectangle
type Platform struct {
	Rect
}

// MovingPlatform oscillates sinusoidally around its anchor.
// A zero amplitude means no motion on that axis.
type MovingPlatform struct {
	Rect
	StartX, StartY float64
	MoveX, MoveY   float64
	Speed          float64
	Offset         float64
	Direction      int
}

// NewMovingPlatform anchors a moving platform at r's position
func NewMovingPlatform(r Rect, moveX, moveY, speed float64) *MovingPlatform {
	return &MovingPlatform{
		Rect:      r,
		StartX:    r.X,
		StartY:    r.Y,
		MoveX:     moveX,
		MoveY:     moveY,
		Speed:     speed,
		Direction: 1,
	}
}

// Advance steps the phase accumulator and recomputes position
func (p *MovingPlatform) Advance() {
	p.Offset += p.Speed
	phase := math.Sin(p.Offset * PhaseRate)
	if p.MoveX != 0 {
		p.X = p.StartX + phase*p.MoveX
	}
	if p.MoveY != 0 {
		p.Y = p.StartY + phase*p.MoveY
	}
}

// Velocity returns the instantaneous per-tick velocity, the derivative of
// the sinusoid at the current phase.
func (p *MovingPlatform) Velocity() (vx, vy float64) {
	d := math.Cos(p.Offset*PhaseRate) * p.Speed * PhaseRate
	return d * p.MoveX, d * p.MoveY
}

// FallingPlatform drops after the player stands on it for FallDelay ticks.
// Falling is terminal: the platform never returns.
type FallingPlatform struct {
	Rect
	OriginalY float64
	Triggered bool
	Falling   bool
	FallDelay int
	FallSpeed float64
}

// NewFallingPlatform creates a dormant falling platform
func NewFallingPlatform(r Rect, fallDelay int) *FallingPlatform {
	return &FallingPlatform{
		Rect:      r,
		OriginalY: r.Y,
		FallDelay: fallDelay,
	}
}

// IsSolid reports whether the platform still takes part in collision
func (p *FallingPlatform) IsSolid() bool {
	return !p.Falling
}

// DisappearingPlatform toggles visibility on a timer.
// Only visible platforms collide and render.
type DisappearingPlatform struct {
	Rect
	Visible  bool
	Alpha    float64
	Timer    int
	MaxTimer int
}

// NewDisappearingPlatform creates a visible platform with a full timer
func NewDisappearingPlatform(r Rect, maxTimer int) *DisappearingPlatform {
	if maxTimer <= 0 {
		maxTimer = 120
	}
	return &DisappearingPlatform{
		Rect:     r,
		Visible:  true,
		Alpha:    1,
		Timer:    maxTimer,
		MaxTimer: maxTimer,
	}
}

// Tick counts the timer down, fading while visible and flipping
// visibility each time the timer runs out.
func (p *DisappearingPlatform) Tick() {
	p.Timer--
	if p.Timer <= 0 {
		p.Visible = !p.Visible
		p.Timer = p.MaxTimer
	}
	if p.Visible {
		p.Alpha = float64(p.Timer) / float64(p.MaxTimer)
	} else {
		p.Alpha = 0
	}
}
