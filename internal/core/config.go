package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for the autopilot

	Board          string // Preset ID; empty selects the default preset
	PresetDir      string // Extra preset directory; empty means built-ins only
	EdgePolicy     string // "wrap" or "row_bounded"; empty keeps the game default
	AutopilotTicks int    // Ticks between autopilot moves
	CollapseRows   bool   // Fold runs of cleared rows into one line
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:        80,
		ScreenH:        24,
		TickRate:       30,
		Seed:           0, // 0 means use current time in platform layer
		AutopilotTicks: 6,
		CollapseRows:   true,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Tiles cleared
	Moves    int    // Matches made
	Tiles    int    // Length of the tile sequence
	Outcome  string // "playing", "won" or "lost"
	Round    int    // Incremented on every new game
	GameOver bool   // Whether the game has ended
	Won      bool   // Whether the game ended cleared
	Paused   bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	// Changed reports whether the board changed this tick.
	Changed bool
}
