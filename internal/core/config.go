package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the board and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended (lost or won)
	Won      bool // Whether the round ended with a full board
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Reset bool // The tick started a fresh round instead of simulating
}
