package entity

// Enemy dimensions
const (
	EnemyWidth  = 24
	EnemyHeight = 24

	// DefaultPatrolRadius is used when a level omits an enemy's patrol radius
	DefaultPatrolRadius = 50
)

// Enemy represents a patrolling enemy
type Enemy struct {
	ID EntityID
	Body

	Kind      EnemyKind
	Speed     float64
	Direction int // 1 = right, -1 = left

	// Patrol band in world x
	PatrolStart float64
	PatrolEnd   float64
}

// NewEnemy creates an enemy at x, y with a patrol band of x ± radius.
// A non-positive radius falls back to DefaultPatrolRadius.
func NewEnemy(id EntityID, kind EnemyKind, x, y, speed, radius float64) *Enemy {
	if radius <= 0 {
		radius = DefaultPatrolRadius
	}
	if speed == 0 {
		speed = 1
	}
	return &Enemy{
		ID: id,
		Body: Body{
			Rect:     Rect{X: x, Y: y, W: EnemyWidth, H: EnemyHeight},
			OnGround: true,
		},
		Kind:        kind,
		Speed:       speed,
		Direction:   1,
		PatrolStart: x - radius,
		PatrolEnd:   x + radius,
	}
}

// PatrolMid returns the midpoint of the patrol band
func (e *Enemy) PatrolMid() float64 {
	return e.PatrolStart + (e.PatrolEnd-e.PatrolStart)/2
}

// OutOfPatrol reports whether the enemy touches or crosses its patrol bounds
func (e *Enemy) OutOfPatrol() bool {
	return e.X <= e.PatrolStart || e.Right() >= e.PatrolEnd
}

// Turn reverses the patrol direction
func (e *Enemy) Turn() {
	e.Direction = -e.Direction
}
