package core

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Vowels are the letters that make a two-letter piece playable.
const Vowels = "AEIOU"

// weightResolution is the number of pool entries per unit of weight.
const weightResolution = 10

// LetterWeight is one row of the letter frequency table.
type LetterWeight struct {
	Letter rune
	Weight float64
}

// DefaultFrequencies returns English letter frequencies in percent.
func DefaultFrequencies() []LetterWeight {
	return []LetterWeight{
		{'E', 12.7}, {'T', 9.1}, {'A', 8.2}, {'O', 7.5}, {'I', 7.0}, {'N', 6.7},
		{'S', 6.3}, {'H', 6.1}, {'R', 6.0}, {'D', 4.3}, {'L', 4.0}, {'C', 2.8},
		{'U', 2.8}, {'M', 2.4}, {'W', 2.4}, {'F', 2.2}, {'G', 2.0}, {'Y', 2.0},
		{'P', 1.9}, {'B', 1.5}, {'V', 1.0}, {'K', 0.8}, {'J', 0.2}, {'X', 0.2},
		{'Q', 0.1}, {'Z', 0.1},
	}
}

// IsVowel reports whether r is one of Vowels.
func IsVowel(r rune) bool {
	return strings.ContainsRune(Vowels, r)
}

// ExpandPool turns a frequency table into a draw pool in which each letter
// appears round(weight*10) times.
func ExpandPool(freqs []LetterWeight) ([]rune, error) {
	var pool []rune
	for _, f := range freqs {
		if !IsLetter(f.Letter) {
			return nil, fmt.Errorf("letters: %q is not an uppercase letter", f.Letter)
		}
		if f.Weight < 0 || math.IsNaN(f.Weight) || math.IsInf(f.Weight, 0) {
			return nil, fmt.Errorf("letters: invalid weight %v for %c", f.Weight, f.Letter)
		}
		count := int(math.Round(f.Weight * weightResolution))
		for range count {
			pool = append(pool, f.Letter)
		}
	}
	if len(pool) == 0 {
		return nil, errors.New("letters: frequency table expands to an empty pool")
	}
	return pool, nil
}

// Generator draws letters and builds pieces, keeping one piece queued for
// the preview.
type Generator struct {
	rng             *rand.Rand
	pool            []rune
	twoLetterChance float64
	next            []rune
}

// NewGenerator creates a generator and fills the lookahead queue.
func NewGenerator(rng *rand.Rand, freqs []LetterWeight, twoLetterChance float64) (*Generator, error) {
	if twoLetterChance < 0 || twoLetterChance > 1 {
		return nil, fmt.Errorf("letters: two-letter chance %v outside [0,1]", twoLetterChance)
	}
	pool, err := ExpandPool(freqs)
	if err != nil {
		return nil, err
	}
	if twoLetterChance > 0 && !strings.ContainsFunc(string(pool), IsVowel) {
		return nil, errors.New("letters: two-letter pieces need at least one vowel in the pool")
	}

	g := &Generator{
		rng:             rng,
		pool:            pool,
		twoLetterChance: twoLetterChance,
	}
	g.next = g.GeneratePiece()
	return g, nil
}

// Draw samples one letter uniformly from the expanded pool.
func (g *Generator) Draw() rune {
	return g.pool[g.rng.Intn(len(g.pool))]
}

// GeneratePiece returns the letters of a fresh piece. Two-letter pieces are
// redrawn until they contain a vowel.
func (g *Generator) GeneratePiece() []rune {
	if g.rng.Float64() >= g.twoLetterChance {
		return []rune{g.Draw()}
	}
	for {
		letters := []rune{g.Draw(), g.Draw()}
		if IsVowel(letters[0]) || IsVowel(letters[1]) {
			return letters
		}
	}
}

// Peek returns the queued piece without consuming it.
func (g *Generator) Peek() []rune {
	out := make([]rune, len(g.next))
	copy(out, g.next)
	return out
}

// Next hands out the queued piece and queues a new one.
func (g *Generator) Next() []rune {
	piece := g.next
	g.next = g.GeneratePiece()
	return piece
}
