package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickwords/internal/games/brickwords/core"
)

func TestFixedRatioGrantsFromCumulativeWords(t *testing.T) {
	p := core.NewProgression(core.DefaultProgressionConfig())

	assert.Equal(t, 0, p.Record(4, 4))
	assert.Equal(t, 1, p.Record(1, 1), "fifth word earns a token")
	assert.Equal(t, 1, p.PauseTokens)

	require.NoError(t, p.TogglePause())
	require.NoError(t, p.TogglePause())
	assert.Equal(t, 0, p.PauseTokens)

	assert.Equal(t, 1, p.Record(9, 9), "fourteen words total, none held")
	assert.Equal(t, 14, p.WordsCleared)
	assert.Equal(t, 1, p.PauseTokens)
	assert.Equal(t, 2, p.TokensGranted)
	assert.Equal(t, 14, p.Score)
}

func TestFixedRatioComparesHeldTokens(t *testing.T) {
	p := core.NewProgression(core.DefaultProgressionConfig())

	require.Equal(t, 1, p.Record(5, 5))
	require.NoError(t, p.TogglePause())
	require.NoError(t, p.TogglePause())

	// 6/5 = 1 and nothing is held, so the next clear earns a token again.
	assert.Equal(t, 1, p.Record(1, 1))
	assert.Equal(t, 1, p.PauseTokens)

	// Still 1 held for 7/5 = 1.
	assert.Equal(t, 0, p.Record(1, 1))
}

func TestFixedRatioOneGrantPerClear(t *testing.T) {
	p := core.NewProgression(core.DefaultProgressionConfig())

	assert.Equal(t, 1, p.Record(15, 15))
	assert.Equal(t, 1, p.PauseTokens)

	// 16/5 = 3 > 1: the next clear catches up by one more.
	assert.Equal(t, 1, p.Record(1, 1))
	assert.Equal(t, 2, p.PauseTokens)
}

func TestEscalatingThresholds(t *testing.T) {
	p := core.NewProgression(core.ProgressionConfig{Policy: core.PolicyEscalating, InitialThreshold: 5})

	tests := []struct {
		words       int
		wantGranted int
		wantNext    int
	}{
		{4, 0, 5},
		{1, 1, 7},  // 5 words: 5 + 1 + 1
		{2, 1, 10}, // 7 words: 7 + 2 + 1
		{2, 0, 10},
		{1, 1, 14}, // 10 words: 10 + 3 + 1
	}
	for i, tt := range tests {
		got := p.Record(tt.words, 0)
		if got != tt.wantGranted {
			t.Errorf("step %d: granted %d, want %d", i, got, tt.wantGranted)
		}
		if p.NextThreshold != tt.wantNext {
			t.Errorf("step %d: next threshold %d, want %d", i, p.NextThreshold, tt.wantNext)
		}
	}
	assert.Equal(t, 3, p.PauseTokens)
}

func TestTogglePauseNeedsToken(t *testing.T) {
	p := core.NewProgression(core.DefaultProgressionConfig())

	err := p.TogglePause()
	assert.ErrorIs(t, err, core.ErrNoPauseTokens)
	assert.ErrorIs(t, err, core.ErrInvalidCommand)
	assert.False(t, p.Paused)
}

func TestProgressionConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     core.ProgressionConfig
		wantErr bool
	}{
		{"default", core.DefaultProgressionConfig(), false},
		{"zero ratio", core.ProgressionConfig{Policy: core.PolicyFixedRatio}, true},
		{"zero threshold", core.ProgressionConfig{Policy: core.PolicyEscalating}, true},
		{"unknown policy", core.ProgressionConfig{Policy: "lottery", Ratio: 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
