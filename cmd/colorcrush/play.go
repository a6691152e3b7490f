package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colorcrush/internal/config"
	"github.com/vovakirdan/colorcrush/internal/core"
	"github.com/vovakirdan/colorcrush/internal/games/colorcrush"
	"github.com/vovakirdan/colorcrush/internal/games/colorcrush/engine"
	"github.com/vovakirdan/colorcrush/internal/platform/tui"
	"github.com/vovakirdan/colorcrush/internal/storage"
)

var (
	flagFPS    int
	flagSeed   int64
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Start a game on this terminal.

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Tap the tile under the cursor
  Mouse click  - Tap a tile
  Esc          - Drop the selection
  R            - New board (records the current score)
  P            - Pause
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit (records the current score)

Tap a tile, then a neighbour, to swap them. Tap an area-clear or
color-clear tile twice to fire it, or next to another tile to aim it.

Examples:
  colorcrush play
  colorcrush play --seed 42
  colorcrush play --config ./my-rules.yaml --log-file ./colorcrush.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The terminal belongs to Bubble Tea; log only to --log-file.
	logger, closeLog, err := newLogger(io.Discard, "colorcrush")
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Continue without storage - the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var highScores engine.HighScoreStore
	if store != nil {
		highScores = store.HighScores(colorcrush.GameID)
	}
	game := colorcrush.New(colorcrush.Options{
		Config:     gameCfg,
		HighScores: highScores,
		Logger:     logger,
	})

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if err := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Player: playerName(),
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// loadGameConfig resolves the game config and logs where it came from.
func loadGameConfig(logger *log.Logger) (config.ColorCrushConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.ColorCrushConfig{}, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// playerName returns --player, falling back to the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	return os.Getenv("USER")
}
