package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TicksFor converts a duration in seconds to a whole number of ticks,
// never less than one.
func (c RuntimeConfig) TicksFor(seconds float64) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return Max(1, int(seconds*float64(rate)+0.5))
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Phase    string // Session phase name (title, ready, playing, gameOver)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the presentation effects the tick
// produced.
type StepResult struct {
	State   GameState
	Effects []Effect
}
