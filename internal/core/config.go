package core

// RuntimeConfig is passed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score     int
	HighScore int
	Busy      bool // a move is still resolving
	Paused    bool
	GameOver  bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState

	// Finished is set when the player abandoned the current game this tick
	// (restart). FinalScore holds its score so the platform can record it.
	Finished   bool
	FinalScore int
}
