package core

import "strings"

// MinWordLen is the shortest run of letters the scanner will test.
const MinWordLen = 3

// Direction is the orientation of a scan line.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Tile is one letter of a match.
type Tile struct {
	Row    int
	Col    int
	Letter rune
}

// Coord returns the tile position.
func (t Tile) Coord() Coord {
	return C(t.Row, t.Col)
}

// Match is a contiguous run of tiles on one scan line spelling a word.
type Match struct {
	Tiles     []Tile
	Direction Direction
}

// Word returns the letters of the match.
func (m Match) Word() string {
	var sb strings.Builder
	for _, t := range m.Tiles {
		sb.WriteRune(t.Letter)
	}
	return sb.String()
}

// Len returns the number of tiles.
func (m Match) Len() int {
	return len(m.Tiles)
}

// Cells returns the coordinates of the match in scan order.
func (m Match) Cells() []Coord {
	cells := make([]Coord, len(m.Tiles))
	for i, t := range m.Tiles {
		cells[i] = t.Coord()
	}
	return cells
}

// WordSet is the dictionary the scanner tests substrings against.
type WordSet interface {
	Contains(word string) bool
}

// Scan finds at most one word per maximal run of occupied cells along every
// row (Horizontal) or column (Vertical). Within a run the longest word wins,
// and among equal lengths the one starting nearest the top-left.
// Scan only reads the view.
func Scan(view BoardView, words WordSet, dir Direction) []Match {
	if words == nil {
		return nil
	}

	lines, length := view.Rows(), view.Cols()
	if dir == Vertical {
		lines, length = view.Cols(), view.Rows()
	}

	var matches []Match
	run := make([]Tile, 0, length)
	for line := range lines {
		run = run[:0]
		for pos := 0; pos <= length; pos++ {
			row, col := line, pos
			if dir == Vertical {
				row, col = pos, line
			}
			if pos < length {
				if c := view.Cell(row, col); c.Occupied {
					run = append(run, Tile{Row: row, Col: col, Letter: c.Letter})
					continue
				}
			}
			if m, ok := matchRun(run, words); ok {
				m.Direction = dir
				matches = append(matches, m)
			}
			run = run[:0]
		}
	}
	return matches
}

// ScanAll runs the horizontal scan followed by the vertical scan.
func ScanAll(view BoardView, words WordSet) []Match {
	matches := Scan(view, words, Horizontal)
	return append(matches, Scan(view, words, Vertical)...)
}

// matchRun applies the longest-first, leftmost-first search to one run.
func matchRun(run []Tile, words WordSet) (Match, bool) {
	if len(run) < MinWordLen {
		return Match{}, false
	}
	letters := make([]rune, len(run))
	for i, t := range run {
		letters[i] = t.Letter
	}
	for size := len(run); size >= MinWordLen; size-- {
		for start := 0; start+size <= len(run); start++ {
			if !words.Contains(string(letters[start : start+size])) {
				continue
			}
			tiles := make([]Tile, size)
			copy(tiles, run[start:start+size])
			return Match{Tiles: tiles}, true
		}
	}
	return Match{}, false
}
