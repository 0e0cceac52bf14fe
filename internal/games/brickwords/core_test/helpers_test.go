package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickwords/internal/games/brickwords/core"
)

// wordSet is a minimal core.WordSet for tests.
type wordSet map[string]bool

func words(ws ...string) wordSet {
	set := wordSet{}
	for _, w := range ws {
		set[w] = true
	}
	return set
}

func (w wordSet) Contains(word string) bool {
	return w[word]
}

func mustBoard(t *testing.T, rows ...string) *core.Board {
	t.Helper()
	b, err := core.BoardFromRows(rows)
	require.NoError(t, err)
	return b
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// checkCellInvariant fails if any cell has a letter without being occupied
// or the other way round.
func checkCellInvariant(t *testing.T, v core.BoardView) {
	t.Helper()
	for row := range v.Rows() {
		for col := range v.Cols() {
			c := v.Cell(row, col)
			if c.Occupied != (c.Letter != 0) {
				t.Fatalf("cell (%d,%d): occupied=%v letter=%q", row, col, c.Occupied, c.Letter)
			}
		}
	}
}

// recorder collects session events.
type recorder struct {
	events []core.Event
}

func (r *recorder) record(e core.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(match func(core.Event) bool) int {
	n := 0
	for _, e := range r.events {
		if match(e) {
			n++
		}
	}
	return n
}

func isSpawn(e core.Event) bool {
	_, ok := e.(core.PieceSpawned)
	return ok
}

func isGameOver(e core.Event) bool {
	_, ok := e.(core.GameOver)
	return ok
}

func isTokenGranted(e core.Event) bool {
	_, ok := e.(core.TokenGranted)
	return ok
}
