package system

import (
	"math"

	"github.com/younwookim/cyberguard/internal/domain/entity"
	"github.com/younwookim/cyberguard/internal/infrastructure/config"
)

// Per-tick advance of the animation phases
const (
	teleporterAnimRate = 0.1
	collectibleBobRate = 0.05
)

// PlatformSystem runs the time-gated level objects: moving, falling and
// disappearing platforms, teleporter cooldowns, collectible bobbing and chasers.
type PlatformSystem struct {
	config  *config.PhysicsConfig
	physics *PhysicsSystem
}

// NewPlatformSystem creates a new platform system
func NewPlatformSystem(cfg *config.PhysicsConfig, physics *PhysicsSystem) *PlatformSystem {
	return &PlatformSystem{config: cfg, physics: physics}
}

// Update advances every time-gated object of the world by one tick
func (s *PlatformSystem) Update(w *entity.World, player *entity.Player) {
	for _, p := range w.MovingPlatforms {
		p.Advance()
	}
	for _, p := range w.FallingPlatforms {
		s.updateFalling(p, player)
	}
	for _, p := range w.DisappearingPlatforms {
		p.Tick()
	}
	for _, t := range w.Teleporters {
		updateTeleporter(t)
	}
	for _, c := range w.Collectibles {
		c.BobOffset += collectibleBobRate
	}
	for _, c := range w.Chasers {
		updateChaser(c, player)
	}
}

// updateFalling moves a falling platform through dormant, triggered and falling
func (s *PlatformSystem) updateFalling(p *entity.FallingPlatform, player *entity.Player) {
	if !p.Triggered && player.OnGround && entity.Overlaps(s.physics.SupportProbe(&player.Body), p.Rect) {
		p.Triggered = true
	}

	if p.Triggered && !p.Falling {
		p.FallDelay--
		if p.FallDelay <= 0 {
			p.Falling = true
		}
	}

	if p.Falling {
		p.FallSpeed += s.config.Platforms.FallAcceleration
		p.Y += p.FallSpeed
	}
}

func updateTeleporter(t *entity.Teleporter) {
	if t.Cooldown > 0 {
		t.Cooldown--
	}
	t.AnimOffset += teleporterAnimRate
}

// updateChaser slides a chaser toward the player's center without overshooting
func updateChaser(c *entity.Chaser, player *entity.Player) {
	dx := player.CenterX() - c.CenterX()
	step := math.Min(c.Speed, math.Abs(dx))
	if dx < 0 {
		step = -step
	}
	c.X += step
}
