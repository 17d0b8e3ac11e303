package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovingPlatform_Advance(t *testing.T) {
	t.Run("horizontal only", func(t *testing.T) {
		p := NewMovingPlatform(Rect{X: 250, Y: 400, W: 80, H: 20}, 100, 0, 1)

		for i := 1; i <= 50; i++ {
			p.Advance()
			assert.InDelta(t, 250+100*math.Sin(float64(i)*PhaseRate), p.X, 1e-9)
			assert.Equal(t, 400.0, p.Y, "no vertical amplitude means no vertical motion")
		}
	})

	t.Run("vertical only", func(t *testing.T) {
		p := NewMovingPlatform(Rect{X: 700, Y: 250, W: 80, H: 20}, 0, 100, 1.5)

		p.Advance()
		assert.Equal(t, 700.0, p.X)
		assert.InDelta(t, 250+100*math.Sin(1.5*PhaseRate), p.Y, 1e-9)
	})
}

func TestMovingPlatform_Velocity(t *testing.T) {
	p := NewMovingPlatform(Rect{X: 0, Y: 0, W: 80, H: 20}, 0, 100, 1.5)

	vx, vy := p.Velocity()
	assert.Zero(t, vx)
	assert.InDelta(t, 100*1.5*PhaseRate, vy, 1e-9, "derivative at phase zero is amplitude*speed*rate")

	// Derivative approximates the next tick's displacement
	before := p.Y
	_, vy = p.Velocity()
	p.Advance()
	assert.InDelta(t, vy, p.Y-before, 0.01)
}

func TestFallingPlatform_IsSolid(t *testing.T) {
	p := NewFallingPlatform(Rect{X: 600, Y: 300, W: 80, H: 20}, 180)

	assert.True(t, p.IsSolid())
	assert.Equal(t, 300.0, p.OriginalY)
	assert.Equal(t, 180, p.FallDelay)

	p.Falling = true
	assert.False(t, p.IsSolid())
}

func TestDisappearingPlatform_Tick(t *testing.T) {
	p := NewDisappearingPlatform(Rect{X: 300, Y: 400, W: 80, H: 20}, 4)

	assert.True(t, p.Visible)
	assert.Equal(t, 1.0, p.Alpha)

	p.Tick()
	assert.True(t, p.Visible)
	assert.InDelta(t, 0.75, p.Alpha, 1e-9, "alpha fades linearly with timer/maxTimer")

	p.Tick()
	p.Tick()
	assert.True(t, p.Visible)

	p.Tick()
	assert.False(t, p.Visible, "hides when the timer runs out")
	assert.Zero(t, p.Alpha)
	assert.Equal(t, 4, p.Timer)

	for i := 0; i < 4; i++ {
		p.Tick()
	}
	assert.True(t, p.Visible, "reappears after a full hidden cycle")
	assert.Equal(t, 1.0, p.Alpha)
}

func TestNewDisappearingPlatform_DefaultTimer(t *testing.T) {
	p := NewDisappearingPlatform(Rect{}, 0)

	assert.Equal(t, 120, p.MaxTimer)
	assert.Equal(t, 120, p.Timer)
}
