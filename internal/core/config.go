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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Coins collected so far
	Level    int  // Current level number, 0 when not applicable
	GameOver bool // Whether the session has ended
	Won      bool // Whether the session ended with every level cleared
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Progress is the persisted campaign state of a player.
type Progress struct {
	MaxUnlocked int // Highest playable level, 1-based
	Coins       int
	LastPlayed  int // Level to resume, 1-based
}

// NewProgress returns the state of a fresh player.
func NewProgress() Progress {
	return Progress{MaxUnlocked: 1, LastPlayed: 1}
}
