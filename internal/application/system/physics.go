package system

import (
	"math"

	"github.com/younwookim/cyberguard/internal/domain/entity"
	"github.com/younwookim/cyberguard/internal/infrastructure/config"
)

// PhysicsSystem integrates bodies and resolves them against platform surfaces
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// Step advances body by one tick against the given solids.
// It returns true when the body ended below the world by more than fallMargin.
func (s *PhysicsSystem) Step(body *entity.Body, solids []entity.Solid, fallMargin float64) bool {
	if !body.OnGround {
		body.VelY += s.config.Physics.Gravity
	}

	prev := body.Rect

	body.X += body.VelX
	body.Y += body.VelY
	body.OnGround = false

	for _, solid := range solids {
		s.resolve(body, prev, solid)
	}

	return body.Y > s.config.WorldHeight()+fallMargin
}

// SupportProbe returns the rectangle used to test whether a body stands on something
func (s *PhysicsSystem) SupportProbe(body *entity.Body) entity.Rect {
	return body.Rect.ExtendDown(s.config.Physics.GroundProbe)
}

// resolve applies the landing, bump and side rules for a single surface
func (s *PhysicsSystem) resolve(body *entity.Body, prev entity.Rect, solid entity.Solid) {
	tol := s.config.Physics.LandingTolerance

	// Landing wins over every other contact
	if body.VelY >= 0 && prev.Bottom() <= solid.Y+tol && entity.Overlaps(s.SupportProbe(body), solid.Rect) {
		body.Y = solid.Y - body.H
		body.VelY = 0
		body.OnGround = true
		if solid.Mover != nil {
			s.ride(body, solid.Mover)
		}
		return
	}

	if !entity.Overlaps(body.Rect, solid.Rect) {
		return
	}

	if body.VelY < 0 && prev.Y >= solid.Bottom()-tol {
		body.Y = solid.Bottom()
		body.VelY = 0
		return
	}

	if math.Abs(prev.Bottom()-solid.Y) <= s.config.Physics.SideThreshold {
		return
	}

	switch {
	case body.VelX > 0 && prev.Right() <= solid.X+tol:
		body.X = solid.X - body.W
		body.VelX = 0
	case body.VelX < 0 && prev.X >= solid.Right()-tol:
		body.X = solid.Right()
		body.VelX = 0
	}
}

// ride carries a grounded body along with the platform it stands on
func (s *PhysicsSystem) ride(body *entity.Body, mover *entity.MovingPlatform) {
	vx, vy := mover.Velocity()
	body.X += vx
	body.Y += vy
}
