package engine

import "time"

// GameState is the loop state machine, every state but StateRunning is terminal
type GameState int

const (
	StateRunning GameState = iota
	StateWon
	StateLost
	StateQuit
)

// String returns the state name
func (s GameState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal reports whether the loop exits in this state
func (s GameState) Terminal() bool {
	return s != StateRunning
}

// Stats summarizes a finished or running session
type Stats struct {
	Ticks         uint64
	FramesSent    uint64
	FramesDropped uint64
	Kills         int
	Elapsed       time.Duration
}
