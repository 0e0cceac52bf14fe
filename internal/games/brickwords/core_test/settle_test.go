package core_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickwords/internal/games/brickwords/core"
)

func TestWordScore(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{4, 3},
		{5, 9},
		{10, 2187},
		{11, 8748},
		{12, 34992},
	}
	for _, tt := range tests {
		if got := core.WordScore(tt.n); got != tt.want {
			t.Errorf("WordScore(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}

	for n := 1; n <= 80; n++ {
		if core.WordScore(n) < core.WordScore(n-1) {
			t.Errorf("WordScore(%d) < WordScore(%d)", n, n-1)
		}
	}
}

func TestWordScoreSaturates(t *testing.T) {
	assert.Positive(t, core.WordScore(core.MaxBoardSize))
	assert.Equal(t, math.MaxInt, core.WordScore(40))
	assert.Equal(t, math.MaxInt, core.WordScore(200))
}

func TestClearAndSettleCat(t *testing.T) {
	b := mustBoard(t,
		".....",
		".XY..",
		".QZ..",
		".CAT.",
	)
	matches := core.ScanAll(b.Snapshot(), words("CAT"))
	require.Len(t, matches, 1)
	assert.Equal(t, 3, matches[0].Len())

	res := core.ClearMatches(b, matches)
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, 3, res.CellsCleared)
	require.Len(t, res.Words, 1)
	assert.Equal(t, "CAT", res.Words[0].Word)

	moves := core.Settle(b)
	assert.Equal(t, []string{
		".....",
		".....",
		".XY..",
		".QZ..",
	}, b.Snapshot().Lines())
	assert.ElementsMatch(t, []core.SettleMove{
		{From: core.C(1, 1), To: core.C(2, 1)},
		{From: core.C(2, 1), To: core.C(3, 1)},
		{From: core.C(1, 2), To: core.C(2, 2)},
		{From: core.C(2, 2), To: core.C(3, 2)},
	}, moves)
	assert.True(t, core.IsSettled(b.Snapshot()))
	checkCellInvariant(t, b.Snapshot())
}

func TestClearMatchesIntersectionScoresTwice(t *testing.T) {
	b := mustBoard(t,
		".B..",
		".A..",
		"CAT.",
	)
	matches := core.ScanAll(b.Snapshot(), words("CAT", "BAA"))
	require.Len(t, matches, 2)

	res := core.ClearMatches(b, matches)
	assert.Equal(t, 2, res.Score)
	assert.Len(t, res.Words, 2)
	assert.Equal(t, 5, res.CellsCleared, "the shared cell is cleared once")
	assert.Zero(t, b.OccupiedCount())
}

func TestSettleTallStackReportsNetMoves(t *testing.T) {
	b := mustBoard(t,
		"A.",
		"B.",
		"..",
		"..",
		"..",
		"C.",
	)
	moves := core.Settle(b)

	assert.Equal(t, []string{"..", "..", "..", "A.", "B.", "C."}, b.Snapshot().Lines())
	assert.Equal(t, []core.SettleMove{
		{From: core.C(0, 0), To: core.C(3, 0)},
		{From: core.C(1, 0), To: core.C(4, 0)},
	}, moves)
}

func TestSettleIdempotentAndClosed(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := range 200 {
		b := core.NewBoard(12, 8)
		for row := range b.Rows() {
			for col := range b.Cols() {
				if rng.Intn(3) == 0 {
					require.NoError(t, b.Place(row, col, rune('A'+rng.Intn(26))))
				}
			}
		}
		count := b.OccupiedCount()

		core.Settle(b)
		after := b.Snapshot()
		if !core.IsSettled(after) {
			t.Fatalf("board %d not settled:\n%s", i, after)
		}
		assert.Equal(t, count, b.OccupiedCount(), "settle never creates or destroys tiles")

		assert.Empty(t, core.Settle(b), "second settle must not move anything")
		assert.Equal(t, after.String(), b.Snapshot().String())
		checkCellInvariant(t, b.Snapshot())
	}
}
