package state

// GameState represents the current state of a session
type GameState int

const (
	StateStart GameState = iota
	StatePlaying
	StateGameOver
	StateGameWin
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	case StateGameWin:
		return "GameWin"
	default:
		return "Unknown"
	}
}

// Finished reports whether the session has ended and waits for a restart
func (s GameState) Finished() bool {
	return s == StateGameOver || s == StateGameWin
}
