// Package colorcrush adapts the match-3 engine to the tick-driven arcade
// platform: it maps input to taps, paces the cascade phases over ticks
// and draws the board into a screen buffer.
package colorcrush

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorcrush/internal/config"
	"github.com/vovakirdan/colorcrush/internal/core"
	"github.com/vovakirdan/colorcrush/internal/games/colorcrush/engine"
)

// GameID identifies the game in storage.
const GameID = "colorcrush"

// Options configures a new Game.
type Options struct {
	Config     config.ColorCrushConfig // zero value means defaults
	HighScores engine.HighScoreStore   // optional
	Logger     *log.Logger             // optional
}

// Game implements core.Game for Color Crush.
type Game struct {
	cfg    config.ColorCrushConfig
	store  engine.HighScoreStore
	logger *log.Logger

	session *engine.Session
	view    engine.Snapshot // latest state pushed by the session
	rng     *rand.Rand      // seeds successive boards

	tick       uint64
	phase      engine.Phase
	phaseTicks int // ticks spent in the current phase
	combo      int // clearing rounds in the current move

	cursor engine.Pos

	screenW int
	screenH int
	layout  layout

	paused   bool
	tooSmall bool
}

// New creates a game. Call Reset before the first Step.
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg == (config.ColorCrushConfig{}) {
		cfg = config.DefaultColorCrushConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		store:  opts.HighScores,
		logger: logger,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Color Crush"
}

// Reset starts a new session with a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.screenW, g.screenH = cfg.ScreenW, cfg.ScreenH
	g.relayout()

	g.session = engine.NewSession(engine.Config{
		Seed:       g.rng.Int63(),
		Rules:      g.cfg.Rules(),
		HighScores: g.store,
		Observer:   g,
		Logger:     g.logger,
	})
	g.resetMove()
	g.cursor = engine.P(engine.Rows/2, engine.Cols/2)
}

// Resize adapts the layout to a new terminal size and keeps the game.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.relayout()
}

// BoardChanged implements engine.Observer.
func (g *Game) BoardChanged(s engine.Snapshot) {
	g.view = s
}

// Clearing implements engine.Observer.
func (g *Game) Clearing(positions []engine.Pos) {
	g.combo++
	g.logger.Debug("clearing", "tiles", len(positions), "combo", g.combo)
}

// Step advances one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		final := g.session.Score()
		g.logger.Info("new board", "final_score", final)
		g.session.NewGame()
		g.resetMove()
		g.paused = false
		return core.StepResult{State: g.State(), Finished: true, FinalScore: final}
	}

	if input.Has(core.ActionPause) && !g.tooSmall {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)
	g.animate()

	return core.StepResult{State: g.State()}
}

// processInput moves the cursor and turns confirms and clicks into taps.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case input.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case input.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case input.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	if input.Has(core.ActionCancel) {
		g.session.Deselect()
	}
	if input.Has(core.ActionConfirm) {
		g.tap(g.cursor)
	}
	for _, c := range input.Clicks {
		g.TapScreen(c.X, c.Y)
	}
}

func (g *Game) moveCursor(dr, dc int) {
	g.cursor = engine.P(
		core.Clamp(g.cursor.Row+dr, 0, engine.Rows-1),
		core.Clamp(g.cursor.Col+dc, 0, engine.Cols-1),
	)
}

// TapScreen taps the tile drawn at screen position (x, y). It reports
// whether the tap was accepted.
func (g *Game) TapScreen(x, y int) bool {
	if g.paused || g.tooSmall {
		return false
	}
	row, col, ok := g.layout.grid.At(x, y)
	if !ok {
		return false
	}
	g.cursor = engine.P(row, col)
	out := g.tap(g.cursor)
	return out != engine.OutcomeIgnored && out != engine.OutcomeBusy
}

func (g *Game) tap(p engine.Pos) engine.Outcome {
	if !g.session.Busy() {
		g.combo = 0 // activations report their first clearing round from inside Tap
	}
	out := g.session.Tap(p)
	g.logger.Debug("tap", "pos", p, "outcome", out)
	return out
}

// animate holds each cascade phase on screen for its configured number of
// ticks, then advances the engine.
func (g *Game) animate() {
	if ph := g.session.Phase(); ph != g.phase {
		g.phase = ph
		g.phaseTicks = 0
	}
	if !g.session.Busy() {
		return
	}
	g.phaseTicks++
	if g.phaseTicks >= g.ticksFor(g.phase) {
		g.session.Advance()
		g.phase = g.session.Phase()
		g.phaseTicks = 0
	}
}

func (g *Game) ticksFor(p engine.Phase) int {
	a := g.cfg.Animation
	switch p {
	case engine.PhaseSwapped:
		return a.SwapTicks
	case engine.PhaseClearing:
		return a.ClearTicks
	case engine.PhaseFalling:
		return a.FallTicks
	case engine.PhaseReverted:
		return a.RevertTicks
	default:
		return 1
	}
}

func (g *Game) resetMove() {
	g.phase = g.session.Phase()
	g.phaseTicks = 0
	g.combo = 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		Busy:      g.session.Busy(),
		Paused:    g.paused,
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.session.Score()
}
