package config

import (
	_ "embed"
)

//go:embed defaults/brickwords.yaml
var defaultBrickwordsYAML []byte

// DefaultBrickwordsConfig returns the default Brickwords configuration.
func DefaultBrickwordsConfig() BrickwordsConfig {
	return BrickwordsConfig{
		Board: BoardConfig{
			Rows: 12,
			Cols: 8,
		},
		Timing: TimingConfig{
			FallIntervalMS: 500,
		},
		Letters: LettersConfig{
			TwoLetterChance: 0.1,
			Frequencies: []LetterWeight{
				{"E", 12.7}, {"T", 9.1}, {"A", 8.2}, {"O", 7.5}, {"I", 7.0}, {"N", 6.7},
				{"S", 6.3}, {"H", 6.1}, {"R", 6.0}, {"D", 4.3}, {"L", 4.0}, {"C", 2.8},
				{"U", 2.8}, {"M", 2.4}, {"W", 2.4}, {"F", 2.2}, {"G", 2.0}, {"Y", 2.0},
				{"P", 1.9}, {"B", 1.5}, {"V", 1.0}, {"K", 0.8}, {"J", 0.2}, {"X", 0.2},
				{"Q", 0.1}, {"Z", 0.1},
			},
		},
		Pause: PauseConfig{
			Policy:           PolicyFixedRatio,
			Ratio:            5,
			InitialThreshold: 5,
		},
	}
}
