// Package state holds the gameplay scene's run state.
package state

// GameState represents the current state of the game
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	// StateReplaying feeds recorded input instead of live input
	StateReplaying
	// StateReplayDone is reached when a replay runs out of frames
	StateReplayDone
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
	case StateReplayDone:
		return "ReplayDone"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the world advances in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying || s == StateReplaying
}
