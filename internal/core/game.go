package core

// Game is a tick-driven game the platform can host. Implementations keep
// all their state internally and never touch the terminal.
type Game interface {
	ID() string
	Title() string

	// Reset starts over with the given screen size and seed.
	Reset(cfg RuntimeConfig)

	// Step advances one tick with the input gathered since the last one.
	Step(in InputFrame) StepResult

	// Render draws the current frame.
	Render(dst *Screen)

	State() GameState
}

// Resizable games adapt their layout when the terminal size changes
// without losing progress.
type Resizable interface {
	Resize(w, h int)
}
