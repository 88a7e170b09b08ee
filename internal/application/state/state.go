package state

// GameState represents the current state of the frontend
type GameState int

const (
	StateMenu GameState = iota
	StateFighting
	StatePaused
	StateMatchOver
	StateReplay
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateFighting:
		return "Fighting"
	case StatePaused:
		return "Paused"
	case StateMatchOver:
		return "MatchOver"
	case StateReplay:
		return "Replay"
	default:
		return "Unknown"
	}
}
