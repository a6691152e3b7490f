package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/colorcrush/internal/config"
)

var flagYAML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective rules and pacing",
	Long: `Show the game config that play and serve would use, and where it
was loaded from.

Search order:
  1. --config / COLORCRUSH_CONFIG
  2. ~/.colorcrush/configs/colorcrush.yaml
  3. ./configs/colorcrush.yaml
  4. built-in defaults

Examples:
  colorcrush config
  colorcrush config --yaml > ~/.colorcrush/configs/colorcrush.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the config as YAML")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(cfg)
	}

	pterm.Info.Printfln("Loaded from %s", source)

	s, p, a := cfg.Scoring, cfg.PowerUps, cfg.Animation
	rows := pterm.TableData{
		{"Setting", "Value"},
		{"points per tile", strconv.Itoa(s.PointsPerTile)},
		{"four-run bonus", strconv.Itoa(s.FourRun)},
		{"five-run bonus", strconv.Itoa(s.FiveRun)},
		{"area-clear", strconv.Itoa(s.AreaClear)},
		{"color-clear per tile", strconv.Itoa(s.ColorClearPointsPerTile)},
		{"random clear", fmt.Sprintf("%d..%d tiles", p.RandomClearMin, p.RandomClearMax)},
		{"swap / clear ticks", fmt.Sprintf("%d / %d", a.SwapTicks, a.ClearTicks)},
		{"fall / revert ticks", fmt.Sprintf("%d / %d", a.FallTicks, a.RevertTicks)},
		{"blink ticks", strconv.Itoa(a.BlinkTicks)},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
