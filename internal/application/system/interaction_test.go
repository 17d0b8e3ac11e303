package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/cyberguard/internal/domain/entity"
)

func createTestViewport() Viewport {
	return NewViewport(Camera{}, createTestPhysicsConfig())
}

func createTestInteractionWorld() *entity.World {
	return &entity.World{
		Spawn: entity.Point{X: 50, Y: 400},
		Collectibles: []*entity.Collectible{
			{Rect: entity.Rect{X: 330, Y: 420, W: 20, H: 20}, Kind: entity.CollectibleFirewall},
		},
		Teleporters: []*entity.Teleporter{
			{Rect: entity.Rect{X: 600, Y: 420, W: 20, H: 30}, Target: entity.Point{X: 100, Y: 200}},
		},
		Goal: &entity.Goal{Rect: entity.Rect{X: 900, Y: 400, W: 40, H: 50}},
	}
}

func TestInteractionSystem_Hazards(t *testing.T) {
	tests := []struct {
		name  string
		world *entity.World
	}{
		{"enemy", &entity.World{Enemies: []*entity.Enemy{entity.NewEnemy(1, entity.EnemyVirus, 55, 405, 1, 50)}}},
		{"spike", &entity.World{Spikes: []*entity.Spike{{Rect: entity.Rect{X: 40, Y: 420, W: 100, H: 20}}}}},
		{"chaser", &entity.World{Chasers: []*entity.Chaser{entity.NewChaser(entity.Rect{X: 0, Y: 0, W: 60, H: 600}, entity.ChaserWall, 1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewInteractionSystem(createTestPhysicsConfig())
			player := entity.NewPlayer(entity.Point{X: 50, Y: 400})

			events := sys.Resolve(tt.world, player, createTestViewport(), Progress{})

			assert.Equal(t, []Event{RespawnEvent{}}, events)
		})
	}
}

func TestInteractionSystem_InvulnerableIgnoresHazards(t *testing.T) {
	sys := NewInteractionSystem(createTestPhysicsConfig())
	w := &entity.World{Spikes: []*entity.Spike{{Rect: entity.Rect{X: 40, Y: 420, W: 100, H: 20}}}}
	player := entity.NewPlayer(entity.Point{X: 50, Y: 400})
	player.Invulnerable = 1

	events := sys.Resolve(w, player, createTestViewport(), Progress{})

	assert.Empty(t, events)
}

func TestInteractionSystem_OffscreenEnemyIsHarmless(t *testing.T) {
	sys := NewInteractionSystem(createTestPhysicsConfig())
	w := &entity.World{Enemies: []*entity.Enemy{entity.NewEnemy(1, entity.EnemyVirus, 3005, 405, 1, 50)}}
	player := entity.NewPlayer(entity.Point{X: 3000, Y: 400})

	events := sys.Resolve(w, player, createTestViewport(), Progress{})

	assert.Empty(t, events)
}

func TestInteractionSystem_Collectible(t *testing.T) {
	sys := NewInteractionSystem(createTestPhysicsConfig())
	w := createTestInteractionWorld()
	player := entity.NewPlayer(entity.Point{X: 325, Y: 415})

	events := sys.Resolve(w, player, createTestViewport(), Progress{Total: 1})

	assert.Equal(t, []Event{CollectEvent{Kind: entity.CollectibleFirewall}}, events)
	assert.True(t, w.Collectibles[0].Collected)

	// Staying on the pickup yields nothing more
	events = sys.Resolve(w, player, createTestViewport(), Progress{Collected: 1, Total: 1})
	assert.Empty(t, events)
}

func TestInteractionSystem_Teleporter(t *testing.T) {
	sys := NewInteractionSystem(createTestPhysicsConfig())
	w := createTestInteractionWorld()
	player := entity.NewPlayer(entity.Point{X: 598, Y: 420})
	player.VelX, player.VelY = 6, -3

	events := sys.Resolve(w, player, createTestViewport(), Progress{})

	require.Equal(t, []Event{TeleportEvent{Target: entity.Point{X: 100, Y: 200}}}, events)
	assert.Equal(t, 100.0, player.X)
	assert.Equal(t, 200.0, player.Y)
	assert.Zero(t, player.VelX)
	assert.Zero(t, player.VelY)
	assert.Equal(t, 60, w.Teleporters[0].Cooldown)

	// Back on the pad while cooling down: inert
	player.SetPos(598, 420)
	w.Teleporters[0].Cooldown = 59
	events = sys.Resolve(w, player, createTestViewport(), Progress{})
	assert.Empty(t, events)
	assert.Equal(t, 598.0, player.X)
}

func TestInteractionSystem_Goal(t *testing.T) {
	tests := []struct {
		name     string
		progress Progress
		want     GoalEvent
	}{
		{"incomplete", Progress{Collected: 1, Total: 3}, GoalEvent{Remaining: 2}},
		{"complete", Progress{Collected: 3, Total: 3}, GoalEvent{Complete: true}},
		{"empty level", Progress{}, GoalEvent{Complete: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewInteractionSystem(createTestPhysicsConfig())
			w := createTestInteractionWorld()
			player := entity.NewPlayer(entity.Point{X: 910, Y: 410})

			events := sys.Resolve(w, player, createTestViewport(), tt.progress)

			assert.Equal(t, []Event{tt.want}, events)
		})
	}
}

func TestInteractionSystem_CollectThenGoalSameTick(t *testing.T) {
	sys := NewInteractionSystem(createTestPhysicsConfig())
	w := &entity.World{
		Collectibles: []*entity.Collectible{
			{Rect: entity.Rect{X: 910, Y: 410, W: 20, H: 20}, Kind: entity.CollectibleVPN},
		},
		Goal: &entity.Goal{Rect: entity.Rect{X: 900, Y: 400, W: 40, H: 50}},
	}
	player := entity.NewPlayer(entity.Point{X: 905, Y: 405})

	events := sys.Resolve(w, player, createTestViewport(), Progress{Total: 1})

	assert.Equal(t, []Event{
		CollectEvent{Kind: entity.CollectibleVPN},
		GoalEvent{Complete: true},
	}, events)
}

func TestProgress_Remaining(t *testing.T) {
	assert.Equal(t, 2, Progress{Collected: 1, Total: 3}.Remaining())
	assert.Zero(t, Progress{Collected: 4, Total: 3}.Remaining())
}
