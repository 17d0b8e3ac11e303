package config

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shippedConfigs = "../../../cmd/game/configs"

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader(shippedConfigs)

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Display.ScreenWidth)
	assert.Equal(t, 600, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 0.6, cfg.Physics.Gravity)
	assert.Equal(t, 5.0, cfg.Physics.LandingTolerance)
	assert.Equal(t, 120, cfg.Player.InvulnerableTicks)
	assert.Equal(t, 60, cfg.Teleporter.Cooldown)
	assert.Equal(t, 150, cfg.Scoring.CollectibleReward)
	assert.Equal(t, 3*time.Second, cfg.UI.MessageDuration)
	assert.Equal(t, 5, cfg.Session.MaxLevel)
}

func TestLoader_LoadPhysics_PartialOverride(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.yaml": {Data: []byte("physics:\n  gravity: 1.2\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 1.2, cfg.Physics.Gravity)
	assert.Equal(t, 5.0, cfg.Physics.LandingTolerance, "unnamed values keep their defaults")
	assert.Equal(t, 6.0, cfg.Player.Speed)
}

func TestLoader_LoadPhysics_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewFSLoader(fstest.MapFS{}, "mem").LoadPhysics()
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		fsys := fstest.MapFS{"physics.yaml": {Data: []byte("physics: [1, 2")}}
		_, err := NewFSLoader(fsys, "mem").LoadPhysics()
		assert.ErrorContains(t, err, "failed to parse physics.yaml")
	})
}

func TestLoader_LoadLevel(t *testing.T) {
	loader := NewLoader(shippedConfigs)

	cfg, err := loader.LoadLevel(1)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Number)
	assert.Len(t, cfg.Platforms, 5)
	require.Len(t, cfg.MovingPlatforms, 1)
	assert.Equal(t, 100.0, cfg.MovingPlatforms[0].MoveX)
	assert.Zero(t, cfg.MovingPlatforms[0].MoveY)
	assert.Equal(t, 250.0, cfg.MovingPlatforms[0].X, "inline rect fields decode")
	require.Len(t, cfg.FallingPlatforms, 1)
	assert.Equal(t, 180, cfg.FallingPlatforms[0].FallDelay)
	require.Len(t, cfg.Enemies, 1)
	assert.Equal(t, "virus", cfg.Enemies[0].Type)
	assert.Equal(t, 40.0, cfg.Enemies[0].Patrol)
	assert.Len(t, cfg.Collectibles, 3)
	assert.Equal(t, 950.0, cfg.Goal.X)
}

func TestLoader_LoadLevels(t *testing.T) {
	loader := NewLoader(shippedConfigs)

	set, err := loader.LoadLevels()
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, set.Numbers())

	lvl3, n := set.Lookup(3)
	assert.Equal(t, 3, n)
	require.Len(t, lvl3.Teleporters, 2)
	assert.Equal(t, 640.0, lvl3.Teleporters[0].Target.X)
	assert.Equal(t, "#ff00ff", lvl3.Teleporters[0].Color)

	lvl5, _ := set.Lookup(5)
	require.Len(t, lvl5.Chasers, 1)
	assert.Equal(t, "wall", lvl5.Chasers[0].Type)
	assert.Less(t, lvl5.Chasers[0].X+lvl5.Chasers[0].Width, lvl5.Spawn.X, "the wall starts behind the spawn")
}

func TestLoader_LoadLevels_RequiresLevelOne(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/level2.yaml": {Data: []byte("number: 2\ngoal: {x: 0, y: 0, width: 10, height: 10}\n")},
	}

	_, err := NewFSLoader(fsys, "mem").LoadLevels()
	assert.True(t, errors.Is(err, ErrNoLevels))
}

func TestLoader_LoadLevels_InvalidLevel(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/level1.yaml": {Data: []byte("number: 1\nplatforms:\n  - {x: 0, y: 0, width: 0, height: 10}\n")},
	}

	_, err := NewFSLoader(fsys, "mem").LoadLevels()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLevel))
	assert.ErrorContains(t, err, "goal must have a positive size")
	assert.ErrorContains(t, err, "platform 0 must have a positive size")
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader(shippedConfigs)

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Levels)
	assert.Equal(t, shippedConfigs, loader.BasePath())
}
