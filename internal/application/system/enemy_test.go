package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/cyberguard/internal/domain/entity"
)

func createTestEnemySystem() *EnemySystem {
	cfg := createTestPhysicsConfig()
	return NewEnemySystem(cfg, NewPhysicsSystem(cfg))
}

// createTestEnemy places a grounded enemy on a platform whose top is at y 450
func createTestEnemy(x, radius float64) *entity.Enemy {
	e := entity.NewEnemy(1, entity.EnemyVirus, x, 450-entity.EnemyHeight, 1, radius)
	e.OnGround = true
	return e
}

func TestEnemySystem_FlipsAtPatrolEnd(t *testing.T) {
	sys := createTestEnemySystem()
	solids := []entity.Solid{{Rect: entity.Rect{X: 280, Y: 450, W: 200, H: 20}}}
	e := createTestEnemy(350, 40)
	require.Equal(t, 310.0, e.PatrolStart)
	require.Equal(t, 390.0, e.PatrolEnd)

	e.X = 365
	sys.Update(e, solids)

	assert.Equal(t, 365.0, e.X, "step that would touch the bound is reverted")
	assert.Equal(t, -1, e.Direction)
	assert.True(t, e.OnGround)

	sys.Update(e, solids)
	assert.Equal(t, 364.0, e.X)
	assert.Equal(t, -1, e.Direction, "flips only once")
}

func TestEnemySystem_PatrolContainment(t *testing.T) {
	sys := createTestEnemySystem()
	solids := []entity.Solid{{Rect: entity.Rect{X: 0, Y: 450, W: 1000, H: 20}}}
	e := createTestEnemy(350, 40)

	turns := 0
	dir := e.Direction
	for i := 0; i < 500; i++ {
		sys.Update(e, solids)
		require.True(t, e.OnGround)
		require.GreaterOrEqual(t, e.X, e.PatrolStart, "tick %d", i)
		require.LessOrEqual(t, e.Right(), e.PatrolEnd, "tick %d", i)
		if e.Direction != dir {
			turns++
			dir = e.Direction
		}
	}
	assert.Greater(t, turns, 5, "enemy paces back and forth")
}

func TestEnemySystem_CliffDetection(t *testing.T) {
	sys := createTestEnemySystem()
	// A short ledge inside a wide patrol band
	solids := []entity.Solid{{Rect: entity.Rect{X: 300, Y: 450, W: 80, H: 20}}}
	e := createTestEnemy(340, 100)

	for i := 0; i < 300; i++ {
		sys.Update(e, solids)
		require.True(t, e.OnGround, "tick %d", i)
		require.GreaterOrEqual(t, e.X, 300.0)
		require.LessOrEqual(t, e.Right(), 380.0)
	}
}

func TestEnemySystem_AirborneDoesNotPatrol(t *testing.T) {
	sys := createTestEnemySystem()
	e := createTestEnemy(350, 40)
	e.OnGround = false
	e.Y = 100

	sys.Update(e, nil)

	assert.Equal(t, 350.0, e.X)
	assert.Greater(t, e.Y, 100.0)
}

func TestEnemySystem_OffWorldReset(t *testing.T) {
	sys := createTestEnemySystem()
	e := createTestEnemy(350, 40)
	e.OnGround = false
	e.Y = 750
	e.VelY = 12

	sys.Update(e, nil)

	assert.Equal(t, e.PatrolMid(), e.X)
	assert.Equal(t, 200.0, e.Y)
	assert.Zero(t, e.VelY)
	assert.False(t, e.OnGround)
}

func TestEnemySystem_Probe(t *testing.T) {
	sys := createTestEnemySystem()
	e := entity.NewEnemy(1, entity.EnemyWorm, 100, 100, 1, 50)

	assert.Equal(t, entity.Rect{X: 129, Y: 124, W: 10, H: 20}, sys.Probe(e))

	e.Turn()
	assert.Equal(t, entity.Rect{X: 85, Y: 124, W: 10, H: 20}, sys.Probe(e))
}
