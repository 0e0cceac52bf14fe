package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickwords/internal/games/brickwords/core"
)

func newController(t *testing.T, b *core.Board, seed int64, twoLetterChance float64) *core.Controller {
	t.Helper()
	rng := newRand(seed)
	gen, err := core.NewGenerator(rng, core.DefaultFrequencies(), twoLetterChance)
	require.NoError(t, err)
	return core.NewController(b, gen, rng)
}

func offset(p core.Piece) core.Coord {
	return core.C(p.Parts[1].Row-p.Parts[0].Row, p.Parts[1].Col-p.Parts[0].Col)
}

func TestOrientationCycle(t *testing.T) {
	o := core.OrientRight
	want := []core.Orientation{core.OrientBelow, core.OrientLeft, core.OrientAbove, core.OrientRight}
	for _, w := range want {
		o = o.Next()
		assert.Equal(t, w, o)
	}
}

func TestSpawnPlacement(t *testing.T) {
	for seed := range int64(200) {
		b := core.NewBoard(12, 8)
		ctrl := newController(t, b, seed, 0.5)

		p, err := ctrl.Spawn()
		require.NoError(t, err)

		for _, part := range p.Parts {
			assert.True(t, b.InBounds(part.Row, part.Col), "seed %d: part %+v out of bounds", seed, part)
		}
		assert.Equal(t, 0, p.Parts[0].Row)
		if p.Vertical {
			assert.Equal(t, 4, p.Parts[0].Col, "vertical pieces spawn in the middle column")
			if len(p.Parts) == 2 {
				assert.Equal(t, core.OrientBelow, p.Orientation)
			}
		} else if len(p.Parts) == 2 {
			assert.Equal(t, core.OrientRight, p.Orientation)
		}
	}
}

func TestRotateFourTimesRestoresOffset(t *testing.T) {
	for seed := range int64(50) {
		b := core.NewBoard(12, 8)
		ctrl := newController(t, b, seed, 1)

		_, err := ctrl.Spawn()
		require.NoError(t, err)
		for range 3 {
			require.True(t, ctrl.Fall())
		}
		p, _ := ctrl.Active()
		if p.Parts[0].Col == 0 {
			require.True(t, ctrl.MoveHorizontal(1))
		}

		start, _ := ctrl.Active()
		for i := range 4 {
			require.True(t, ctrl.Rotate(), "seed %d: rotation %d rejected", seed, i)
		}
		end, _ := ctrl.Active()

		assert.Equal(t, start.Orientation, end.Orientation)
		assert.Equal(t, offset(start), offset(end))
		assert.Equal(t, start.Parts, end.Parts)
	}
}

func TestRotateRejectedAtomically(t *testing.T) {
	b := core.NewBoard(12, 8)
	ctrl := newController(t, b, 11, 1)

	_, err := ctrl.Spawn()
	require.NoError(t, err)

	// Rotate until the next orientation would point above row 0.
	for {
		p, _ := ctrl.Active()
		if p.Orientation == core.OrientLeft && p.Parts[0].Row == 0 {
			break
		}
		if !ctrl.Rotate() {
			p, _ := ctrl.Active()
			require.Equal(t, 0, p.Parts[0].Col, "only the left wall may block here")
			require.True(t, ctrl.MoveHorizontal(1))
		}
	}

	before, _ := ctrl.Active()
	assert.False(t, ctrl.Rotate())
	after, _ := ctrl.Active()
	assert.Equal(t, before, after)
}

func TestSingleTileDoesNotRotate(t *testing.T) {
	b := core.NewBoard(12, 8)
	ctrl := newController(t, b, 5, 0)

	before, err := ctrl.Spawn()
	require.NoError(t, err)
	assert.False(t, ctrl.Rotate())
	after, _ := ctrl.Active()
	assert.Equal(t, before, after)
}

func TestMoveHorizontalStopsAtWalls(t *testing.T) {
	b := core.NewBoard(12, 8)
	ctrl := newController(t, b, 9, 0.5)
	_, err := ctrl.Spawn()
	require.NoError(t, err)

	for ctrl.MoveHorizontal(-1) {
	}
	p, _ := ctrl.Active()
	minCol := p.Parts[0].Col
	for _, part := range p.Parts {
		minCol = min(minCol, part.Col)
	}
	assert.Equal(t, 0, minCol)

	for ctrl.MoveHorizontal(1) {
	}
	p, _ = ctrl.Active()
	maxCol := p.Parts[0].Col
	for _, part := range p.Parts {
		maxCol = max(maxCol, part.Col)
	}
	assert.Equal(t, 7, maxCol)

	assert.False(t, ctrl.MoveHorizontal(2), "only single-column moves are allowed")
}

func TestMoveBlockedByTile(t *testing.T) {
	b := core.NewBoard(12, 8)
	ctrl := newController(t, b, 2, 0)
	p, err := ctrl.Spawn()
	require.NoError(t, err)

	col := p.Parts[0].Col
	if col == 0 {
		require.True(t, ctrl.MoveHorizontal(1))
		col = 1
	}
	require.NoError(t, b.Place(0, col-1, 'X'))

	assert.False(t, ctrl.MoveHorizontal(-1))
	after, _ := ctrl.Active()
	assert.Equal(t, col, after.Parts[0].Col)
}

func TestFallAndLock(t *testing.T) {
	b := core.NewBoard(5, 4)
	ctrl := newController(t, b, 4, 0)
	p, err := ctrl.Spawn()
	require.NoError(t, err)

	falls := 0
	for ctrl.Fall() {
		falls++
	}
	assert.Equal(t, 4, falls)

	cells, err := ctrl.Lock()
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Equal(t, 4, cells[0].Row)
	assert.Equal(t, p.Parts[0].Letter, b.Cell(4, cells[0].Col).Letter)

	_, ok := ctrl.Active()
	assert.False(t, ok, "locked pieces are discarded")

	_, err = ctrl.Lock()
	assert.ErrorIs(t, err, core.ErrInvalidCommand)
}

func TestSpawnCollisionIsGameOver(t *testing.T) {
	b := mustBoard(t,
		"XXXX",
		"....",
	)
	ctrl := newController(t, b, 1, 0)

	_, err := ctrl.Spawn()
	assert.ErrorIs(t, err, core.ErrGameOver)
	_, ok := ctrl.Active()
	assert.False(t, ok)
	assert.Equal(t, 4, b.OccupiedCount())
}
