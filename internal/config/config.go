// Package config provides YAML-based game configuration loading and
// difficulty presets for Brickwords.
package config

import (
	"fmt"
	"time"
)

// MaxBoardSize is the largest row or column count a board may have.
const MaxBoardSize = 32

// BrickwordsConfig contains all configuration for a Brickwords session.
type BrickwordsConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Letters LettersConfig `yaml:"letters"`
	Pause   PauseConfig   `yaml:"pause"`
}

// BoardConfig defines the grid size.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines the fixed fall interval.
type TimingConfig struct {
	FallIntervalMS int `yaml:"fall_interval_ms"`
}

// FallInterval returns the fall interval as a duration.
func (t TimingConfig) FallInterval() time.Duration {
	return time.Duration(t.FallIntervalMS) * time.Millisecond
}

// LettersConfig defines the letter draw.
type LettersConfig struct {
	TwoLetterChance float64        `yaml:"two_letter_chance"`
	Frequencies     []LetterWeight `yaml:"frequencies"`
}

// LetterWeight is one entry of the frequency table. A list keeps the pool
// order, and with it seeded games, stable.
type LetterWeight struct {
	Letter string  `yaml:"letter"`
	Weight float64 `yaml:"weight"`
}

// PauseConfig defines how pause tokens are earned.
type PauseConfig struct {
	Policy           string `yaml:"policy"` // "fixed_ratio" or "escalating"
	Ratio            int    `yaml:"ratio"`
	InitialThreshold int    `yaml:"initial_threshold"`
}

const (
	PolicyFixedRatio = "fixed_ratio"
	PolicyEscalating = "escalating"
)

// Validate reports the first setting a session cannot run with.
func (c BrickwordsConfig) Validate() error {
	if c.Board.Rows < 3 || c.Board.Cols < 3 {
		return fmt.Errorf("config: board must be at least 3x3, got %dx%d", c.Board.Rows, c.Board.Cols)
	}
	if c.Board.Rows > MaxBoardSize || c.Board.Cols > MaxBoardSize {
		return fmt.Errorf("config: board must be at most %dx%d, got %dx%d",
			MaxBoardSize, MaxBoardSize, c.Board.Rows, c.Board.Cols)
	}
	if c.Timing.FallIntervalMS <= 0 {
		return fmt.Errorf("config: fall_interval_ms must be positive, got %d", c.Timing.FallIntervalMS)
	}
	if c.Letters.TwoLetterChance < 0 || c.Letters.TwoLetterChance > 1 {
		return fmt.Errorf("config: two_letter_chance must be in [0,1], got %v", c.Letters.TwoLetterChance)
	}
	if len(c.Letters.Frequencies) == 0 {
		return fmt.Errorf("config: letter frequency table is empty")
	}
	seen := make(map[string]bool, len(c.Letters.Frequencies))
	for _, f := range c.Letters.Frequencies {
		if len(f.Letter) != 1 || f.Letter[0] < 'A' || f.Letter[0] > 'Z' {
			return fmt.Errorf("config: %q is not a single uppercase letter", f.Letter)
		}
		if seen[f.Letter] {
			return fmt.Errorf("config: letter %s listed twice", f.Letter)
		}
		seen[f.Letter] = true
		if f.Weight < 0 {
			return fmt.Errorf("config: negative weight %v for %s", f.Weight, f.Letter)
		}
	}

	switch c.Pause.Policy {
	case PolicyFixedRatio:
		if c.Pause.Ratio <= 0 {
			return fmt.Errorf("config: pause ratio must be positive, got %d", c.Pause.Ratio)
		}
	case PolicyEscalating:
		if c.Pause.InitialThreshold <= 0 {
			return fmt.Errorf("config: pause initial_threshold must be positive, got %d", c.Pause.InitialThreshold)
		}
	default:
		return fmt.Errorf("config: unknown pause policy %q", c.Pause.Policy)
	}
	return nil
}
