package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cyberguard/internal/domain/entity"
	"github.com/younwookim/cyberguard/internal/infrastructure/config"
)

// InputSystem turns key state into player velocity
type InputSystem struct {
	config *config.PhysicsConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PhysicsConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// InputState is a snapshot of the controls for one tick
type InputState struct {
	Left  bool
	Right bool
	Jump  bool
}

// Poll reads the current key state. Arrows, WASD and space are accepted.
func (s *InputSystem) Poll() InputState {
	return InputState{
		Left:  anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Jump:  anyPressed(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// UpdatePlayer applies an input snapshot to the player's velocity
func (s *InputSystem) UpdatePlayer(player *entity.Player, input InputState) {
	s.handleMovement(player, input)
	s.handleJump(player, input)
	player.UpdateFacing()
}

// handleMovement sets horizontal speed directly; no input decays it
func (s *InputSystem) handleMovement(player *entity.Player, input InputState) {
	switch {
	case input.Left:
		player.VelX = -s.config.Player.Speed
	case input.Right:
		player.VelX = s.config.Player.Speed
	default:
		player.VelX *= s.config.Player.Friction
	}
}

// handleJump starts a jump while grounded; holding jump re-triggers on landing
func (s *InputSystem) handleJump(player *entity.Player, input InputState) {
	if !input.Jump || !player.OnGround {
		return
	}
	player.VelY = -s.config.Player.JumpPower
	player.OnGround = false
}
