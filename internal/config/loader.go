package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "chase.yaml"

// LoadChase loads Queen Chase configuration.
// Search order: customPath -> ~/.queenchase/configs/chase.yaml -> ./configs/chase.yaml -> embedded default
//
// Files only need to name the keys they override; missing keys keep their
// default values.
func LoadChase(customPath string) (ChaseConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ChaseConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseChase(data)
		if err != nil {
			return ChaseConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseChase(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := ParseChase(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseChase(defaultChaseYAML)
	if err != nil {
		return DefaultChaseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseChase decodes YAML on top of the hardcoded defaults and validates the result.
func ParseChase(data []byte) (ChaseConfig, error) {
	cfg := DefaultChaseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ChaseConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	// A preset without an explicit stride implies the preset's stride.
	var probe struct {
		Hazards map[string]any `yaml:"hazards"`
	}
	if err := yaml.Unmarshal(data, &probe); err == nil {
		if _, ok := probe.Hazards["wall_stride"]; !ok && cfg.Difficulty.Preset != "" {
			cfg.Hazards.WallStride = StrideForPreset(cfg.Difficulty.Preset)
		}
	}

	if err := cfg.Validate(); err != nil {
		return ChaseConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg ChaseConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".queenchase", "configs", filename)
}
