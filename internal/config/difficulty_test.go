package config

import "testing"

func TestStrideForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   int
	}{
		{DifficultyEasy, 2},
		{DifficultyHard, 1},
		{"", 2},
	}

	for _, tc := range tests {
		if got := StrideForPreset(tc.preset); got != tc.want {
			t.Errorf("StrideForPreset(%q) = %d, expected %d", tc.preset, got, tc.want)
		}
	}
}

func TestApplyChasePreset(t *testing.T) {
	cfg := DefaultChaseConfig()

	ApplyChasePreset(&cfg, DifficultyHard)
	if cfg.Hazards.WallStride != 1 || cfg.Difficulty.Preset != DifficultyHard {
		t.Errorf("hard preset not applied: %+v", cfg)
	}

	ApplyChasePreset(&cfg, "")
	if cfg.Hazards.WallStride != 1 {
		t.Error("empty preset should leave the config untouched")
	}

	ApplyChasePreset(&cfg, DifficultyEasy)
	if cfg.Hazards.WallStride != 2 {
		t.Errorf("easy preset should set stride 2, got %d", cfg.Hazards.WallStride)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "hard"} {
		if _, ok := ParsePreset(s); !ok {
			t.Errorf("ParsePreset(%q) should succeed", s)
		}
	}
	if _, ok := ParsePreset("normal"); ok {
		t.Error("ParsePreset(normal) should fail")
	}
}
