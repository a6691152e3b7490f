package colorcrush

import "github.com/vovakirdan/colorcrush/internal/games/colorcrush/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Score     int
	HighScore int
	Board     string
	Cursor    engine.Pos
	Selected  *engine.Pos
	Phase     engine.Phase
	Combo     int
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.session.Busy():
		state = StateResolving
	}

	var selected *engine.Pos
	if p, ok := g.session.Selected(); ok {
		selected = &p
	}

	b := g.session.Board()
	return Snapshot{
		Tick:      g.tick,
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		Board:     b.String(),
		Cursor:    g.cursor,
		Selected:  selected,
		Phase:     g.session.Phase(),
		Combo:     g.combo,
		State:     state,
	}
}
