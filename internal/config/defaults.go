package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the default Queen Chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Difficulty: DifficultyConfig{
			Preset: DifficultyEasy,
		},
		Hazards: HazardConfig{
			WallStride: 2,
			RNG:        RNGSeeded,
		},
		Input: InputConfig{
			HoldTimeoutMS: 450,
		},
		Display: DisplayConfig{
			CellWidth:  6,
			CellHeight: 2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultChaseYAML
}
