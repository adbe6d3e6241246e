package state

// GameState represents the current state of the session
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateReplaying
	StateFinished
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReplaying:
		return "Replaying"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Advancing reports whether the simulation steps in this state
func (s GameState) Advancing() bool {
	return s == StatePlaying || s == StateReplaying
}
