package config

import (
	_ "embed"
)

//go:embed defaults/colorcrush.yaml
var defaultColorCrushYAML []byte

// DefaultColorCrushConfig returns the built-in configuration.
func DefaultColorCrushConfig() ColorCrushConfig {
	return ColorCrushConfig{
		Scoring: ScoringConfig{
			PointsPerTile:           10,
			FourRun:                 20,
			FiveRun:                 50,
			AreaClear:               90,
			ColorClearPointsPerTile: 10,
		},
		PowerUps: PowerUpConfig{
			RandomClearMin: 15,
			RandomClearMax: 25,
		},
		Animation: AnimationConfig{
			SwapTicks:   12,
			ClearTicks:  18,
			FallTicks:   18,
			RevertTicks: 12,
			BlinkTicks:  4,
		},
	}
}
