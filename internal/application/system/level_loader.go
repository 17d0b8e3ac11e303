package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/cyberguard/internal/domain/entity"
	"github.com/younwookim/cyberguard/internal/infrastructure/config"
)

// snapDistance is how far an enemy's feet may be from a containing platform
// for the first placement pass
const snapDistance = 50

// GenerateLevel builds a fresh World for the given level number.
// Unknown numbers fall back to level 1; the returned World carries the
// number actually used.
func GenerateLevel(levels *config.LevelSet, number int, rng *rand.Rand) *entity.World {
	cfg, n := levels.Lookup(number)
	spawn := cfg.SpawnPoint()

	w := &entity.World{
		Level: n,
		Spawn: entity.Point{X: spawn.X, Y: spawn.Y},
		Goal:  &entity.Goal{Rect: toRect(cfg.Goal)},
	}

	for _, p := range cfg.Platforms {
		w.Platforms = append(w.Platforms, &entity.Platform{Rect: toRect(p)})
	}
	for _, p := range cfg.MovingPlatforms {
		w.MovingPlatforms = append(w.MovingPlatforms,
			entity.NewMovingPlatform(toRect(p.RectConfig), p.MoveX, p.MoveY, p.Speed))
	}
	for _, p := range cfg.FallingPlatforms {
		w.FallingPlatforms = append(w.FallingPlatforms,
			entity.NewFallingPlatform(toRect(p.RectConfig), p.FallDelay))
	}
	for _, p := range cfg.DisappearingPlatforms {
		w.DisappearingPlatforms = append(w.DisappearingPlatforms,
			entity.NewDisappearingPlatform(toRect(p.RectConfig), p.MaxTimer))
	}

	// Enemies are placed after every platform exists
	supports := enemySupports(w)
	for i, e := range cfg.Enemies {
		enemy := entity.NewEnemy(entity.EntityID(i+1), entity.ParseEnemyKind(e.Type), e.X, e.Y, e.Speed, e.Patrol)
		snapEnemy(enemy, supports)
		w.Enemies = append(w.Enemies, enemy)
	}

	for _, s := range cfg.Spikes {
		w.Spikes = append(w.Spikes, &entity.Spike{
			Rect: entity.Rect{X: s.X, Y: s.Y, W: s.Width, H: entity.SpikeHeight},
		})
	}
	for _, c := range cfg.Chasers {
		w.Chasers = append(w.Chasers,
			entity.NewChaser(toRect(c.RectConfig), entity.ParseChaserKind(c.Type), c.Speed))
	}
	for _, c := range cfg.Collectibles {
		w.Collectibles = append(w.Collectibles, &entity.Collectible{
			Rect:      entity.Rect{X: c.X, Y: c.Y, W: entity.CollectibleSize, H: entity.CollectibleSize},
			Kind:      entity.ParseCollectibleKind(c.Type),
			BobOffset: rng.Float64() * 2 * math.Pi,
		})
	}
	for _, t := range cfg.Teleporters {
		// Loaded levels have valid colors; an unchecked one is left undrawn
		col, _ := config.ParseHexColor(t.Color)
		w.Teleporters = append(w.Teleporters, &entity.Teleporter{
			Rect:       toRect(t.RectConfig),
			Target:     entity.Point{X: t.Target.X, Y: t.Target.Y},
			Color:      col,
			AnimOffset: rng.Float64() * 2 * math.Pi,
		})
	}

	return w
}

func toRect(r config.RectConfig) entity.Rect {
	return entity.Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
}

// enemySupports lists the surfaces an enemy may be placed on, in search order
func enemySupports(w *entity.World) []entity.Rect {
	rects := make([]entity.Rect, 0, len(w.Platforms)+len(w.MovingPlatforms)+len(w.FallingPlatforms))
	for _, p := range w.Platforms {
		rects = append(rects, p.Rect)
	}
	for _, p := range w.MovingPlatforms {
		rects = append(rects, p.Rect)
	}
	for _, p := range w.FallingPlatforms {
		rects = append(rects, p.Rect)
	}
	return rects
}

// snapEnemy stands the enemy on a nearby platform. The first pass wants a
// platform that fully contains it horizontally with its feet close to the
// top; the second takes the closest platform at or below that overlaps it
// at all. With no candidate the authored position is kept.
func snapEnemy(e *entity.Enemy, supports []entity.Rect) {
	for _, p := range supports {
		if e.X >= p.X && e.Right() <= p.Right() && math.Abs(e.Bottom()-p.Y) < snapDistance {
			e.Y = p.Y - e.H
			return
		}
	}

	best := -1
	bestDist := math.Inf(1)
	for i, p := range supports {
		if e.Right() <= p.X || e.X >= p.Right() || p.Y < e.Y {
			continue
		}
		if d := math.Abs(p.Y - e.Bottom()); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best >= 0 {
		e.Y = supports[best].Y - e.H
	}
}
