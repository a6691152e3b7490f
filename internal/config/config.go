// Package config provides YAML-based configuration for Color Crush:
// scoring constants, special-tile tuning and animation pacing.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/colorcrush/internal/games/colorcrush/engine"
)

// ColorCrushConfig contains all configuration for the game.
type ColorCrushConfig struct {
	Scoring   ScoringConfig   `yaml:"scoring"`
	PowerUps  PowerUpConfig   `yaml:"power_ups"`
	Animation AnimationConfig `yaml:"animation"`
}

// ScoringConfig defines points awarded per event.
type ScoringConfig struct {
	PointsPerTile           int `yaml:"points_per_tile"`      // plain three-run, per tile
	FourRun                 int `yaml:"four_run"`             // flat, spawns an area-clear
	FiveRun                 int `yaml:"five_run"`             // flat, spawns a color-clear
	AreaClear               int `yaml:"area_clear"`           // flat, per activation
	ColorClearPointsPerTile int `yaml:"color_clear_per_tile"` // per tile removed
}

// PowerUpConfig tunes special tiles.
type PowerUpConfig struct {
	RandomClearMin int `yaml:"random_clear_min"` // untargeted color-clear, lower bound
	RandomClearMax int `yaml:"random_clear_max"` // untargeted color-clear, upper bound
}

// AnimationConfig sets how many ticks each cascade phase is shown for
// before the game advances the engine.
type AnimationConfig struct {
	SwapTicks   int `yaml:"swap_ticks"`
	ClearTicks  int `yaml:"clear_ticks"`
	FallTicks   int `yaml:"fall_ticks"`
	RevertTicks int `yaml:"revert_ticks"`
	BlinkTicks  int `yaml:"blink_ticks"` // half-period of the clearing blink
}

// Validate checks the config for values the engine cannot work with.
func (c ColorCrushConfig) Validate() error {
	var errs []error

	s := c.Scoring
	for name, v := range map[string]int{
		"scoring.points_per_tile":      s.PointsPerTile,
		"scoring.four_run":             s.FourRun,
		"scoring.five_run":             s.FiveRun,
		"scoring.area_clear":           s.AreaClear,
		"scoring.color_clear_per_tile": s.ColorClearPointsPerTile,
	} {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}

	p := c.PowerUps
	if p.RandomClearMin < 1 {
		errs = append(errs, fmt.Errorf("power_ups.random_clear_min must be at least 1, got %d", p.RandomClearMin))
	}
	if p.RandomClearMax < p.RandomClearMin {
		errs = append(errs, fmt.Errorf("power_ups.random_clear_max (%d) is below random_clear_min (%d)",
			p.RandomClearMax, p.RandomClearMin))
	}

	a := c.Animation
	for name, v := range map[string]int{
		"animation.swap_ticks":   a.SwapTicks,
		"animation.clear_ticks":  a.ClearTicks,
		"animation.fall_ticks":   a.FallTicks,
		"animation.revert_ticks": a.RevertTicks,
		"animation.blink_ticks":  a.BlinkTicks,
	} {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// Rules converts the scoring and power-up sections to engine rules.
func (c ColorCrushConfig) Rules() engine.Rules {
	return engine.Rules{
		PointsPerTile:           c.Scoring.PointsPerTile,
		FourRunPoints:           c.Scoring.FourRun,
		FiveRunPoints:           c.Scoring.FiveRun,
		AreaClearPoints:         c.Scoring.AreaClear,
		ColorClearPointsPerTile: c.Scoring.ColorClearPointsPerTile,
		RandomClearMin:          c.PowerUps.RandomClearMin,
		RandomClearMax:          c.PowerUps.RandomClearMax,
	}
}
