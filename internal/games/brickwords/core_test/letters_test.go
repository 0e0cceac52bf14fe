package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickwords/internal/games/brickwords/core"
)

func TestExpandPool(t *testing.T) {
	pool, err := core.ExpandPool(core.DefaultFrequencies())
	require.NoError(t, err)

	counts := map[rune]int{}
	for _, r := range pool {
		counts[r]++
	}

	tests := []struct {
		letter rune
		want   int
	}{
		{'E', 127},
		{'T', 91},
		{'Q', 1},
		{'Z', 1},
	}
	for _, tt := range tests {
		if counts[tt.letter] != tt.want {
			t.Errorf("count(%c) = %d, want %d", tt.letter, counts[tt.letter], tt.want)
		}
	}
	assert.Len(t, counts, 26)
}

func TestExpandPoolRejectsBadTables(t *testing.T) {
	tests := []struct {
		name  string
		freqs []core.LetterWeight
	}{
		{"empty", nil},
		{"all zero", []core.LetterWeight{{Letter: 'A', Weight: 0.01}}},
		{"lowercase", []core.LetterWeight{{Letter: 'a', Weight: 1}}},
		{"negative", []core.LetterWeight{{Letter: 'A', Weight: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.ExpandPool(tt.freqs)
			assert.Error(t, err)
		})
	}
}

func TestTwoLetterPiecesAlwaysHaveAVowel(t *testing.T) {
	gen, err := core.NewGenerator(newRand(7), core.DefaultFrequencies(), 1)
	require.NoError(t, err)

	for i := range 10000 {
		piece := gen.GeneratePiece()
		require.Len(t, piece, 2)
		if !core.IsVowel(piece[0]) && !core.IsVowel(piece[1]) {
			t.Fatalf("piece %d = %q has no vowel", i, string(piece))
		}
	}
}

func TestPieceLengthDistribution(t *testing.T) {
	gen, err := core.NewGenerator(newRand(42), core.DefaultFrequencies(), 0.1)
	require.NoError(t, err)

	const n = 20000
	pairs := 0
	for range n {
		if len(gen.GeneratePiece()) == 2 {
			pairs++
		}
	}
	assert.InDelta(t, 0.1, float64(pairs)/n, 0.02)
}

func TestGeneratorSingleLettersOnly(t *testing.T) {
	gen, err := core.NewGenerator(newRand(1), core.DefaultFrequencies(), 0)
	require.NoError(t, err)

	for range 1000 {
		assert.Len(t, gen.GeneratePiece(), 1)
	}
}

func TestGeneratorLookahead(t *testing.T) {
	gen, err := core.NewGenerator(newRand(3), core.DefaultFrequencies(), 0.5)
	require.NoError(t, err)

	for range 50 {
		preview := gen.Peek()
		assert.Equal(t, preview, gen.Peek(), "Peek must not consume")
		assert.Equal(t, preview, gen.Next())
	}
}

func TestNewGeneratorValidation(t *testing.T) {
	_, err := core.NewGenerator(newRand(1), core.DefaultFrequencies(), 1.5)
	assert.Error(t, err)

	consonants := []core.LetterWeight{{Letter: 'B', Weight: 1}, {Letter: 'C', Weight: 1}}
	_, err = core.NewGenerator(newRand(1), consonants, 0.1)
	assert.Error(t, err, "two-letter pieces could never find a vowel")

	_, err = core.NewGenerator(newRand(1), consonants, 0)
	assert.NoError(t, err)
}
