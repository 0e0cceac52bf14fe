package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level. A preset only picks
// the fall interval; it stays fixed for the whole game.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty accepts a preset name, case-insensitively. The empty
// string means "keep the configured interval" and parses as "".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// FallIntervalForPreset returns the fall interval in milliseconds for a
// preset, or 0 for an unknown one.
func FallIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 800
	case DifficultyNormal:
		return 500
	case DifficultyHard:
		return 250
	default:
		return 0
	}
}

// ApplyBrickwordsPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyBrickwordsPreset(cfg *BrickwordsConfig, preset DifficultyPreset) {
	if ms := FallIntervalForPreset(preset); ms > 0 {
		cfg.Timing.FallIntervalMS = ms
	}
}
