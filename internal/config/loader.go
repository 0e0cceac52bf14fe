package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// userConfigDir is the per-user directory under $HOME.
const userConfigDir = ".brickwords"

// LoadBrickwords loads Brickwords configuration.
// Search order: customPath -> ~/.brickwords/configs/brickwords.yaml ->
// ./configs/brickwords.yaml -> embedded default.
// A file only needs the keys it overrides; everything else keeps the
// default value. The result is validated.
func LoadBrickwords(customPath string) (BrickwordsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BrickwordsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseBrickwords(data)
		if err != nil {
			return BrickwordsConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("brickwords.yaml"), filepath.Join("configs", "brickwords.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseBrickwords(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parseBrickwords(defaultBrickwordsYAML); err == nil {
		return cfg, nil
	}
	return DefaultBrickwordsConfig(), nil // Fallback to hardcoded if embed fails
}

// parseBrickwords decodes YAML on top of the defaults and validates it.
func parseBrickwords(data []byte) (BrickwordsConfig, error) {
	cfg := DefaultBrickwordsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BrickwordsConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BrickwordsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userConfigDir, "configs", filename)
}

// DefaultDBPath is the scores database used when no --db flag or
// BRICKWORDS_DB variable is given.
func DefaultDBPath() string {
	return filepath.Join("~", userConfigDir, "scores.db")
}
