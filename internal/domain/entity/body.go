package entity

// Body is the kinematic state shared by the player and enemies.
// Velocities are in world units per tick; nothing is scaled by frame time.
type Body struct {
	Rect
	VelX, VelY float64
	OnGround   bool
}

// Bounds returns the body's collision rectangle
func (b *Body) Bounds() Rect {
	return b.Rect
}

// SetPos moves the body to the given top-left position
func (b *Body) SetPos(x, y float64) {
	b.X = x
	b.Y = y
}

// Stop zeroes both velocity components
func (b *Body) Stop() {
	b.VelX = 0
	b.VelY = 0
}

// Player dimensions
const (
	PlayerWidth  = 24
	PlayerHeight = 32
)

// Player represents the player entity
type Player struct {
	Body

	Facing       int // 1 = right, -1 = left
	Invulnerable int // ticks remaining during which hazards are ignored
}

// NewPlayer creates a player standing at the given spawn point
func NewPlayer(spawn Point) *Player {
	return &Player{
		Body: Body{
			Rect: Rect{X: spawn.X, Y: spawn.Y, W: PlayerWidth, H: PlayerHeight},
		},
		Facing: 1,
	}
}

// IsInvulnerable returns true while hazard contact is ignored
func (p *Player) IsInvulnerable() bool {
	return p.Invulnerable > 0
}

// Respawn resets the player to spawn with zero velocity and iframes
func (p *Player) Respawn(spawn Point, iframes int) {
	p.SetPos(spawn.X, spawn.Y)
	p.Stop()
	p.OnGround = false
	p.Invulnerable = iframes
}

// UpdateFacing flips facing when horizontal speed passes the dead zone
func (p *Player) UpdateFacing() {
	if p.VelX > 0.1 {
		p.Facing = 1
	} else if p.VelX < -0.1 {
		p.Facing = -1
	}
}
