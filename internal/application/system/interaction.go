package system

import (
	"github.com/younwookim/cyberguard/internal/domain/entity"
	"github.com/younwookim/cyberguard/internal/infrastructure/config"
)

// Progress is the collection state the goal check needs
type Progress struct {
	Collected int
	Total     int
}

// Remaining returns how many collectibles are still missing
func (p Progress) Remaining() int {
	if n := p.Total - p.Collected; n > 0 {
		return n
	}
	return 0
}

// InteractionSystem resolves player contact with hazards, pickups,
// teleporters and the goal. World-local effects (marking a collectible,
// moving the player through a teleporter) are applied here; everything
// that touches session state is returned as an Event.
type InteractionSystem struct {
	config *config.PhysicsConfig
}

// NewInteractionSystem creates a new interaction system
func NewInteractionSystem(cfg *config.PhysicsConfig) *InteractionSystem {
	return &InteractionSystem{config: cfg}
}

// Resolve checks every contact for this tick. A hazard hit ends resolution
// immediately with a single RespawnEvent.
func (s *InteractionSystem) Resolve(w *entity.World, player *entity.Player, vp Viewport, progress Progress) []Event {
	if !player.IsInvulnerable() && s.touchesHazard(w, player.Rect, vp) {
		return []Event{RespawnEvent{}}
	}

	var events []Event

	for _, c := range w.Collectibles {
		if !c.Collected && entity.Overlaps(player.Rect, c.Rect) {
			c.Collected = true
			progress.Collected++
			events = append(events, CollectEvent{Kind: c.Kind})
		}
	}

	for _, t := range w.Teleporters {
		if t.Ready() && entity.Overlaps(player.Rect, t.Rect) {
			player.SetPos(t.Target.X, t.Target.Y)
			player.Stop()
			t.Cooldown = s.config.Teleporter.Cooldown
			events = append(events, TeleportEvent{Target: t.Target})
		}
	}

	if w.Goal != nil && entity.Overlaps(player.Rect, w.Goal.Rect) {
		remaining := progress.Remaining()
		events = append(events, GoalEvent{Complete: remaining == 0, Remaining: remaining})
	}

	return events
}

// touchesHazard reports contact with a visible enemy, a spike or a chaser
func (s *InteractionSystem) touchesHazard(w *entity.World, r entity.Rect, vp Viewport) bool {
	for _, e := range w.Enemies {
		if vp.Visible(e.Rect) && entity.Overlaps(r, e.Rect) {
			return true
		}
	}
	for _, sp := range w.Spikes {
		if entity.Overlaps(r, sp.Rect) {
			return true
		}
	}
	for _, c := range w.Chasers {
		if entity.Overlaps(r, c.Rect) {
			return true
		}
	}
	return false
}
