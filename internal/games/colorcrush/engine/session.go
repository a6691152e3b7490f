package engine

import (
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"
)

// HighScoreStore persists the best score across games.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// Observer receives board state for drawing. Snapshots are copies; the
// observer may keep them.
type Observer interface {
	// BoardChanged is called after every mutation.
	BoardChanged(s Snapshot)

	// Clearing is called when positions are about to be removed, before
	// the board changes, so the renderer can fade them out.
	Clearing(positions []Pos)
}

// Snapshot is an immutable view of a session.
type Snapshot struct {
	Board        Board
	Score        int
	HighScore    int
	Phase        Phase
	Selected     Pos
	HasSelection bool
	Clearing     []Pos
}

// Config configures a new Session.
type Config struct {
	Seed       int64          // RNG seed, used when RNG is nil
	RNG        RNG            // optional injected randomness
	Rules      Rules          // zero value means DefaultRules
	HighScores HighScoreStore // optional persistence
	Observer   Observer       // optional renderer
	Logger     *log.Logger    // optional; discards by default
}

// Session is one game: the board, the score, the randomness and the
// interaction and cascade state. All mutation goes through its methods.
type Session struct {
	board     Board
	score     int
	highScore int

	rng      RNG
	rules    Rules
	store    HighScoreStore
	observer Observer
	logger   *log.Logger

	// interaction
	selected     Pos
	hasSelection bool
	busy         bool

	cascade cascade
}

// NewSession creates a session, loads the high score and deals a fresh board.
func NewSession(cfg Config) *Session {
	s := &Session{
		rng:      cfg.RNG,
		rules:    cfg.Rules,
		store:    cfg.HighScores,
		observer: cfg.Observer,
		logger:   cfg.Logger,
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	if s.rules == (Rules{}) {
		s.rules = DefaultRules()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	if s.store != nil {
		high, err := s.store.LoadHighScore()
		if err != nil {
			s.logger.Warn("could not load high score", "error", err)
		} else {
			s.highScore = high
		}
	}

	s.NewGame()
	return s
}

// NewGame deals a fresh board with no pre-existing runs and resets the
// score, selection and cascade state. The high score is kept.
func (s *Session) NewGame() {
	s.board = Board{}
	for r := range Rows {
		for c := range Cols {
			p := P(r, c)
			color := s.randomColor()
			for s.board.matchAt(p, color) {
				color = s.randomColor()
			}
			s.board.Set(p, Tile{Color: color, Kind: KindBase})
		}
	}
	s.score = 0
	s.hasSelection = false
	s.busy = false
	s.cascade = cascade{}
	s.notify()
}

// Board returns a copy of the current board.
func (s *Session) Board() Board {
	return s.board
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best known score, including the current game.
func (s *Session) HighScore() int {
	return s.highScore
}

// Rules returns the scoring rules in effect.
func (s *Session) Rules() Rules {
	return s.rules
}

// Selected returns the selected position, if any.
func (s *Session) Selected() (Pos, bool) {
	return s.selected, s.hasSelection
}

// Busy reports whether a swap or activation is still resolving.
func (s *Session) Busy() bool {
	return s.busy
}

// Phase returns the current cascade phase.
func (s *Session) Phase() Phase {
	return s.cascade.phase
}

// Snapshot returns an immutable copy of the session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Board:        s.board,
		Score:        s.score,
		HighScore:    s.highScore,
		Phase:        s.cascade.phase,
		Selected:     s.selected,
		HasSelection: s.hasSelection,
	}
	if s.cascade.phase == PhaseClearing {
		snap.Clearing = slices.Clone(s.cascade.pending.Cleared)
	}
	return snap
}

// addScore adds points and saves a new high score when it is beaten.
// A failed save is logged and otherwise ignored.
func (s *Session) addScore(points int) {
	if points <= 0 {
		return
	}
	s.score += points
	if s.score <= s.highScore {
		return
	}
	s.highScore = s.score
	if s.store == nil {
		return
	}
	if err := s.store.SaveHighScore(s.highScore); err != nil {
		s.logger.Warn("could not save high score", "score", s.highScore, "error", err)
	}
}

func (s *Session) randomColor() Color {
	return ColorYellow + Color(s.rng.Intn(NumColors))
}

func (s *Session) randomBase() Tile {
	return Tile{Color: s.randomColor(), Kind: KindBase}
}

func (s *Session) notify() {
	if s.observer != nil {
		s.observer.BoardChanged(s.Snapshot())
	}
}
