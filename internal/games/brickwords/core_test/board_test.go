package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickwords/internal/games/brickwords/core"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := core.NewBoard(12, 8)

	assert.Equal(t, 12, b.Rows())
	assert.Equal(t, 8, b.Cols())
	assert.Zero(t, b.OccupiedCount())
	checkCellInvariant(t, b.Snapshot())
}

func TestBoardIsOccupiedOutOfBounds(t *testing.T) {
	b := core.NewBoard(4, 4)

	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, false},
		{3, 3, false},
		{-1, 0, true},
		{0, -1, true},
		{4, 0, true},
		{0, 4, true},
	}
	for _, tt := range tests {
		if got := b.IsOccupied(tt.row, tt.col); got != tt.want {
			t.Errorf("IsOccupied(%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestBoardPlace(t *testing.T) {
	b := core.NewBoard(4, 4)

	require.NoError(t, b.Place(3, 1, 'Q'))
	assert.True(t, b.IsOccupied(3, 1))
	assert.Equal(t, core.Cell{Occupied: true, Letter: 'Q'}, b.Cell(3, 1))

	tests := []struct {
		name     string
		row, col int
		letter   rune
	}{
		{"occupied", 3, 1, 'A'},
		{"above board", -1, 0, 'A'},
		{"right of board", 0, 4, 'A'},
		{"lowercase", 0, 0, 'a'},
		{"zero rune", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := b.Snapshot().String()
			err := b.Place(tt.row, tt.col, tt.letter)
			require.ErrorIs(t, err, core.ErrInvalidPlacement)
			assert.Equal(t, before, b.Snapshot().String(), "failed Place must not change the board")
			checkCellInvariant(t, b.Snapshot())
		})
	}
}

func TestBoardClearAndMove(t *testing.T) {
	b := mustBoard(t,
		"A..",
		"...",
		".B.",
	)

	require.NoError(t, b.Move(core.C(0, 0), core.C(2, 0)))
	assert.False(t, b.IsOccupied(0, 0))
	assert.Equal(t, 'A', b.Cell(2, 0).Letter)

	assert.ErrorIs(t, b.Move(core.C(0, 0), core.C(1, 0)), core.ErrInvalidPlacement, "empty source")
	assert.ErrorIs(t, b.Move(core.C(2, 0), core.C(2, 1)), core.ErrInvalidPlacement, "occupied destination")
	assert.ErrorIs(t, b.Move(core.C(2, 0), core.C(3, 0)), core.ErrInvalidPlacement, "off the board")

	b.Clear(2, 1)
	b.Clear(9, 9)
	assert.Equal(t, 1, b.OccupiedCount())
	checkCellInvariant(t, b.Snapshot())
}

func TestBoardFromRows(t *testing.T) {
	b := mustBoard(t,
		"C..",
		"A .",
		"TOP",
	)
	assert.Equal(t, []string{"C..", "A..", "TOP"}, b.Snapshot().Lines())

	_, err := core.BoardFromRows([]string{"AB", "ABC"})
	assert.ErrorIs(t, err, core.ErrInvalidPlacement)

	_, err = core.BoardFromRows(nil)
	assert.ErrorIs(t, err, core.ErrInvalidPlacement)

	_, err = core.BoardFromRows([]string{"a.."})
	assert.ErrorIs(t, err, core.ErrInvalidPlacement)
}

func TestSnapshotIsACopy(t *testing.T) {
	b := mustBoard(t, "...", "..Z")
	view := b.Snapshot()

	b.Clear(1, 2)

	assert.True(t, view.IsOccupied(1, 2))
	assert.False(t, b.IsOccupied(1, 2))
}
