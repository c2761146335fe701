package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy DifficultyPreset = "easy"
	DifficultyHard DifficultyPreset = "hard"
)

// ParsePreset converts a CLI or menu value to a preset.
// Empty input yields an empty preset, meaning "keep the config's value".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return "", true
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// StrideForPreset returns the wall row stride for a difficulty preset.
// Hard raises a wall candidate in every row, easy in every other row.
func StrideForPreset(preset DifficultyPreset) int {
	if preset == DifficultyHard {
		return 1
	}
	return 2
}

// ApplyChasePreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyChasePreset(cfg *ChaseConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Preset = preset
	cfg.Hazards.WallStride = StrideForPreset(preset)
}
