package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (default 60)
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
	Phase        string // Name of the active state (menu, playing, ...)
	Score        int    // Current score
	GameOver     bool   // Whether the episode has ended
	Paused       bool   // Whether the game is paused
	AwaitingName bool   // A qualifying score is waiting for the player's name
	Quit         bool   // The game asked the platform to exit
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State  GameState
	Ticked bool // Whether game logic advanced during this frame
}
