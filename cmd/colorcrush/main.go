// colorcrush is a match-3 puzzle for the terminal.
//
// Usage:
//
//	colorcrush play          - Play on this terminal
//	colorcrush serve         - Start SSH server for remote play
//	colorcrush scores        - Show high scores
//	colorcrush config        - Show the effective rules and pacing
//
// Global flags:
//
//	--db <path>         - Set database path (default: ~/.colorcrush/scores.db)
//	--config <path>     - Use a custom game config YAML
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Append logs to a file
//
// A .env file in the working directory may set COLORCRUSH_DB,
// COLORCRUSH_CONFIG and COLORCRUSH_LOG_LEVEL.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Global flags
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

// envFlags maps persistent flags to the environment variables that can
// provide their defaults.
var envFlags = map[string]string{
	"db":        "COLORCRUSH_DB",
	"config":    "COLORCRUSH_CONFIG",
	"log-level": "COLORCRUSH_LOG_LEVEL",
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorcrush",
	Short: "Color Crush - match-3 in your terminal",
	Long: `Color Crush is a match-3 puzzle played on an 8x8 board.
Swap neighbouring tiles to line up three or more of a color.
Runs of four make area-clear tiles; runs of five make color-clear tiles.

Available commands:
  play     - Play on this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Show the effective rules and pacing

Examples:
  colorcrush play
  colorcrush play --seed 42
  colorcrush serve --ssh :2222
  colorcrush scores --limit 20`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyEnvDefaults,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.colorcrush/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnvDefaults fills flags the user did not set from the environment.
func applyEnvDefaults(cmd *cobra.Command, _ []string) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		env, ok := envFlags[f.Name]
		if !ok || f.Changed || err != nil {
			return
		}
		if v, set := os.LookupEnv(env); set && v != "" {
			if setErr := f.Value.Set(v); setErr != nil {
				err = fmt.Errorf("invalid %s: %w", env, setErr)
			}
		}
	})
	return err
}
