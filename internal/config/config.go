// Package config provides YAML-based game configuration loading and
// difficulty presets for Queen Chase.
package config

import (
	"fmt"
	"time"
)

// ChaseConfig contains all configuration for the Queen Chase game.
type ChaseConfig struct {
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Hazards    HazardConfig     `yaml:"hazards"`
	Input      InputConfig      `yaml:"input"`
	Display    DisplayConfig    `yaml:"display"`
}

// DifficultyConfig selects a named difficulty preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// HazardConfig defines hazard regeneration parameters.
type HazardConfig struct {
	WallStride int       `yaml:"wall_stride"` // 1 = every row gets a wall draw, 2 = every other row
	RNG        RNGPolicy `yaml:"rng"`
}

// InputConfig defines how terminal key presses become press/release events.
type InputConfig struct {
	// HoldTimeoutMS is how long a direction stays held without a key repeat.
	// 0 latches the direction until another one is pressed.
	HoldTimeoutMS int `yaml:"hold_timeout_ms"`
}

// HoldTimeout returns the hold timeout as a duration.
func (c InputConfig) HoldTimeout() time.Duration {
	return time.Duration(c.HoldTimeoutMS) * time.Millisecond
}

// DisplayConfig defines the size of one board cell on screen.
type DisplayConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// RNGPolicy selects how hazard placement draws are seeded.
type RNGPolicy string

const (
	// RNGSeeded uses one generator seeded at episode start.
	RNGSeeded RNGPolicy = "seeded"
	// RNGClock reseeds from the wall-clock second on every draw.
	RNGClock RNGPolicy = "clock"
)

// Validate checks the configuration for values the game cannot run with.
func (c ChaseConfig) Validate() error {
	switch c.Difficulty.Preset {
	case "", DifficultyEasy, DifficultyHard:
	default:
		return fmt.Errorf("config: unknown difficulty preset %q", c.Difficulty.Preset)
	}
	if c.Hazards.WallStride < 1 || c.Hazards.WallStride > 2 {
		return fmt.Errorf("config: wall_stride must be 1 or 2, got %d", c.Hazards.WallStride)
	}
	switch c.Hazards.RNG {
	case RNGSeeded, RNGClock:
	default:
		return fmt.Errorf("config: unknown rng policy %q", c.Hazards.RNG)
	}
	if c.Input.HoldTimeoutMS < 0 {
		return fmt.Errorf("config: hold_timeout_ms must not be negative, got %d", c.Input.HoldTimeoutMS)
	}
	if c.Display.CellWidth < 2 || c.Display.CellHeight < 1 {
		return fmt.Errorf("config: cell size %dx%d is too small", c.Display.CellWidth, c.Display.CellHeight)
	}
	return nil
}
