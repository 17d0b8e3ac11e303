package system

import (
	"github.com/younwookim/cyberguard/internal/domain/entity"
	"github.com/younwookim/cyberguard/internal/infrastructure/config"
)

// EnemySystem drives ground patrol with cliff detection
type EnemySystem struct {
	config  *config.PhysicsConfig
	physics *PhysicsSystem
}

// NewEnemySystem creates a new enemy system sharing the given physics
func NewEnemySystem(cfg *config.PhysicsConfig, physics *PhysicsSystem) *EnemySystem {
	return &EnemySystem{config: cfg, physics: physics}
}

// Update advances one enemy by a tick
func (s *EnemySystem) Update(e *entity.Enemy, solids []entity.Solid) {
	e.VelX = 0
	if s.physics.Step(&e.Body, solids, s.config.Enemy.FallMargin) {
		s.recover(e)
		return
	}

	if !e.OnGround {
		return
	}

	prevX := e.X
	e.X += e.Speed * float64(e.Direction)

	if e.OutOfPatrol() || !s.groundAhead(e, solids) {
		e.X = prevX
		e.Turn()
	}
}

// Probe returns the lookahead rectangle below the enemy's leading edge
func (s *EnemySystem) Probe(e *entity.Enemy) entity.Rect {
	cfg := s.config.Enemy
	edge := e.Right() + cfg.Lookahead
	if e.Direction < 0 {
		edge = e.X - cfg.Lookahead
	}
	return entity.Rect{
		X: edge - cfg.ProbeWidth/2,
		Y: e.Bottom(),
		W: cfg.ProbeWidth,
		H: cfg.ProbeHeight,
	}
}

func (s *EnemySystem) groundAhead(e *entity.Enemy, solids []entity.Solid) bool {
	probe := s.Probe(e)
	for _, solid := range solids {
		if entity.Overlaps(probe, solid.Rect) {
			return true
		}
	}
	return false
}

// recover places an enemy that fell out of the world back above its patrol band
func (s *EnemySystem) recover(e *entity.Enemy) {
	e.X = e.PatrolMid()
	e.Y = s.config.Enemy.ResetY
	e.VelY = 0
	e.OnGround = false
}
