package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// TickDuration is the simulated time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game as the platform sees it.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
}
