package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorcrush/internal/core"
	"github.com/vovakirdan/colorcrush/internal/storage"
)

// Options configures a Model.
type Options struct {
	Store  *storage.Store // optional; finished games are not recorded without it
	Player string
	Logger *log.Logger
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	renderer   *Renderer
	store      *storage.Store
	player     string
	logger     *log.Logger
	keys       GameKeyMap
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	started    bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   NewRenderer(),
		store:      opts.Store,
		player:     opts.Player,
		logger:     logger,
		keys:       DefaultGameKeyMap(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop. The game must already be Reset; see Start.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Start resets the game once before the program runs.
func (m Model) Start() Model {
	if !m.started {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.started = true
	}
	return m
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.recordScore(m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns left clicks into taps for the next tick.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Click(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events. Games that can relayout
// keep their state; others are reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(core.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Finished {
		m.recordScore(result.FinalScore)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordScore adds a finished game to the history. Empty games are skipped.
func (m Model) recordScore(score int) {
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.player, score); err != nil {
		m.logger.Warn("could not save score", "score", score, "error", err)
		return
	}
	m.logger.Info("score saved", "player", m.player, "score", score)
}

// saveScreenshot writes the current screen as plain text under
// ~/.colorcrush/screenshots.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".colorcrush", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.RenderScreen(m.screen)
}

// Quitting reports whether the player asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts).Start()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
