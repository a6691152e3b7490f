package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colorcrush/internal/games/colorcrush"
	"github.com/vovakirdan/colorcrush/internal/platform/tui"
	"github.com/vovakirdan/colorcrush/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
	flagYes         bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished games and the all-time best score.

A game is finished when the player starts a new board or quits. The
best score also counts games still in progress.

Examples:
  colorcrush scores
  colorcrush scores --limit 25
  colorcrush scores --interactive
  colorcrush scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		return clearScores(store)
	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, colorcrush.GameID, "Color Crush", width, height)
	}
	return printScores(store)
}

func printScores(store *storage.Store) error {
	scores, err := store.TopScores(colorcrush.GameID, flagLimit)
	if err != nil {
		return err
	}
	stats, err := store.GetGameStats(colorcrush.GameID)
	if err != nil {
		return err
	}

	pterm.DefaultSection.Println("High Scores - Color Crush")

	if len(scores) == 0 {
		pterm.Info.Println("No scores recorded yet.")
		if stats.HighScore > 0 {
			pterm.Info.Printfln("Best: %d", stats.HighScore)
		}
		pterm.Println("Run 'colorcrush play' to set the first high score!")
		return nil
	}

	rows := pterm.TableData{{"Rank", "Player", "Score", "Date"}}
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			player,
			strconv.Itoa(entry.Score),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	pterm.Println()
	pterm.Info.Printfln("Best: %d  Games: %d  Average: %.1f", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}

func clearScores(store *storage.Store) error {
	if !flagYes {
		ok, err := pterm.DefaultInteractiveConfirm.Show("Delete all Color Crush scores?")
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Nothing deleted.")
			return nil
		}
	}
	if err := store.ClearScores(colorcrush.GameID); err != nil {
		return err
	}
	pterm.Success.Println("Scores deleted")
	return nil
}
