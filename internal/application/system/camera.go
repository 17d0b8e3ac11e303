package system

import (
	"github.com/younwookim/cyberguard/internal/domain/entity"
	"github.com/younwookim/cyberguard/internal/infrastructure/config"
)

// Camera is the top-left corner of the view in world units
type Camera struct {
	X, Y float64
}

// Follow eases the camera horizontally toward centering the player
func (c *Camera) Follow(player *entity.Player, cfg *config.PhysicsConfig) {
	target := player.X - float64(cfg.Display.ScreenWidth)/2
	c.X += (target - c.X) * cfg.Camera.Smoothing
}

// Reset moves the camera back to the origin
func (c *Camera) Reset() {
	c.X, c.Y = 0, 0
}

// Viewport is the camera rectangle grown by a margin on every side.
// Entities outside it are neither updated nor drawn.
type Viewport struct {
	entity.Rect
}

// NewViewport computes the visible bounds for the camera
func NewViewport(cam Camera, cfg *config.PhysicsConfig) Viewport {
	m := cfg.Camera.VisibilityMargin
	return Viewport{Rect: entity.Rect{
		X: cam.X - m,
		Y: cam.Y - m,
		W: float64(cfg.Display.ScreenWidth) + 2*m,
		H: float64(cfg.Display.ScreenHeight) + 2*m,
	}}
}

// Visible reports whether r intersects the viewport
func (v Viewport) Visible(r entity.Rect) bool {
	return entity.Overlaps(v.Rect, r)
}
