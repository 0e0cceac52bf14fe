package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickwords/internal/games/brickwords/core"
)

func matchWords(ms []core.Match) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Word()
	}
	return out
}

func TestScanHorizontal(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		words wordSet
		want  []string
	}{
		{
			name:  "single word",
			rows:  []string{"......", ".CAT.."},
			words: words("CAT"),
			want:  []string{"CAT"},
		},
		{
			name:  "longest first",
			rows:  []string{"CATS.."},
			words: words("CAT", "CATS", "ATS"),
			want:  []string{"CATS"},
		},
		{
			name:  "leftmost among equal length",
			rows:  []string{"DOGCAT"},
			words: words("DOG", "CAT"),
			want:  []string{"DOG"},
		},
		{
			name:  "runs break at empty cells",
			rows:  []string{"DOG.CAT"},
			words: words("DOG", "CAT"),
			want:  []string{"DOG", "CAT"},
		},
		{
			name:  "word inside a run",
			rows:  []string{"XCATX."},
			words: words("CAT"),
			want:  []string{"CAT"},
		},
		{
			name:  "two letters never match",
			rows:  []string{"AT...."},
			words: words("AT"),
			want:  []string{},
		},
		{
			name:  "rows are scanned top to bottom",
			rows:  []string{"EGG...", "HAM..."},
			words: words("HAM", "EGG"),
			want:  []string{"EGG", "HAM"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.rows...)
			got := core.Scan(b.Snapshot(), tt.words, core.Horizontal)
			assert.Equal(t, tt.want, matchWords(got))
			for _, m := range got {
				assert.Equal(t, core.Horizontal, m.Direction)
			}
		})
	}
}

func TestScanVertical(t *testing.T) {
	b := mustBoard(t,
		"..D.",
		"C.O.",
		"A.G.",
		"T.S.",
	)
	got := core.Scan(b.Snapshot(), words("CAT", "DOG", "DOGS"), core.Vertical)
	require.Len(t, got, 2)

	assert.Equal(t, "CAT", got[0].Word())
	assert.Equal(t, []core.Coord{core.C(1, 0), core.C(2, 0), core.C(3, 0)}, got[0].Cells())
	assert.Equal(t, "DOGS", got[1].Word())
	assert.Equal(t, core.Vertical, got[1].Direction)
}

func TestScanVerticalCoversEveryRow(t *testing.T) {
	// Taller than wide: the run sits below row Cols.
	b := mustBoard(t,
		"...",
		"...",
		"...",
		"...",
		"C..",
		"A..",
		"T..",
	)
	got := core.Scan(b.Snapshot(), words("CAT"), core.Vertical)
	assert.Equal(t, []string{"CAT"}, matchWords(got))
}

func TestScanAllSharesIntersection(t *testing.T) {
	b := mustBoard(t,
		".B..",
		".A..",
		"CAT.",
	)
	got := core.ScanAll(b.Snapshot(), words("CAT", "BAA"))
	require.Len(t, got, 2)
	assert.Equal(t, "CAT", got[0].Word())
	assert.Equal(t, "BAA", got[1].Word())
	assert.Contains(t, got[0].Cells(), core.C(2, 1))
	assert.Contains(t, got[1].Cells(), core.C(2, 1))
}

func TestScanIsPure(t *testing.T) {
	b := mustBoard(t,
		"DOGS..",
		"O.....",
		"GNAT..",
	)
	ws := words("DOGS", "DOG", "GNAT")
	view := b.Snapshot()
	before := view.String()

	first := core.ScanAll(view, ws)
	for range 10 {
		assert.Equal(t, first, core.ScanAll(view, ws))
	}
	assert.Equal(t, before, view.String())
	assert.Equal(t, before, b.Snapshot().String())
}

func TestScanNilWordSet(t *testing.T) {
	b := mustBoard(t, "CAT")
	assert.Empty(t, core.ScanAll(b.Snapshot(), nil))
}
