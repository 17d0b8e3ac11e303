package system

import "github.com/younwookim/cyberguard/internal/domain/entity"

// Event is an outcome of interaction resolution that the session applies
type Event interface {
	isEvent()
}

// RespawnEvent is raised when the player touches a hazard
type RespawnEvent struct{}

func (RespawnEvent) isEvent() {}

// CollectEvent is raised when the player picks up a collectible
type CollectEvent struct {
	Kind entity.CollectibleKind
}

func (CollectEvent) isEvent() {}

// TeleportEvent is raised after the player was moved by a teleporter
type TeleportEvent struct {
	Target entity.Point
}

func (TeleportEvent) isEvent() {}

// GoalEvent is raised while the player overlaps the goal.
// Remaining is the number of collectibles still missing.
type GoalEvent struct {
	Complete  bool
	Remaining int
}

func (GoalEvent) isEvent() {}
