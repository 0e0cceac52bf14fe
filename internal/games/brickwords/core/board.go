package core

import (
	"fmt"
	"strings"
)

// EmptyRune is used by BoardFromRows and BoardView.String for empty cells.
const EmptyRune = '.'

// Cell is one board position. Letter is zero exactly when the cell is empty.
type Cell struct {
	Occupied bool
	Letter   rune
}

// IsLetter reports whether r is an uppercase ASCII letter.
func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// Board is the fixed-size occupancy grid of placed letters.
// Cells are stored in row-major order: index = row*cols + col.
// Every mutation goes through Place, Clear or Move so the Cell invariant
// always holds.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard creates an empty board.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// BoardFromRows builds a board from text rows, top row first.
// EmptyRune and spaces are empty cells; A-Z are placed letters.
func BoardFromRows(lines []string) (*Board, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidPlacement)
	}
	cols := len(lines[0])
	b := NewBoard(len(lines), cols)
	for row, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidPlacement, row, len(line), cols)
		}
		for col, r := range line {
			if r == EmptyRune || r == ' ' {
				continue
			}
			if err := b.Place(row, col, r); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

// InBounds returns true if (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// IsOccupied reports whether a cell blocks movement.
// Out-of-bounds positions count as blocked.
func (b *Board) IsOccupied(row, col int) bool {
	if !b.InBounds(row, col) {
		return true
	}
	return b.cells[b.index(row, col)].Occupied
}

// Cell returns the cell at (row, col), or an empty cell when out of bounds.
func (b *Board) Cell(row, col int) Cell {
	if !b.InBounds(row, col) {
		return Cell{}
	}
	return b.cells[b.index(row, col)]
}

// Place writes a letter into an empty in-bounds cell.
func (b *Board) Place(row, col int, letter rune) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("%w: %v is off the board", ErrInvalidPlacement, C(row, col))
	}
	if !IsLetter(letter) {
		return fmt.Errorf("%w: %q is not a letter", ErrInvalidPlacement, letter)
	}
	i := b.index(row, col)
	if b.cells[i].Occupied {
		return fmt.Errorf("%w: %v is occupied", ErrInvalidPlacement, C(row, col))
	}
	b.cells[i] = Cell{Occupied: true, Letter: letter}
	return nil
}

// Clear empties a cell. Out-of-bounds positions are ignored.
func (b *Board) Clear(row, col int) {
	if b.InBounds(row, col) {
		b.cells[b.index(row, col)] = Cell{}
	}
}

// Move shifts a placed letter to an empty cell in one step.
func (b *Board) Move(from, to Coord) error {
	if !b.InBounds(from.Row, from.Col) || !b.InBounds(to.Row, to.Col) {
		return fmt.Errorf("%w: move %v -> %v leaves the board", ErrInvalidPlacement, from, to)
	}
	src := b.index(from.Row, from.Col)
	dst := b.index(to.Row, to.Col)
	if !b.cells[src].Occupied {
		return fmt.Errorf("%w: %v is empty", ErrInvalidPlacement, from)
	}
	if b.cells[dst].Occupied {
		return fmt.Errorf("%w: %v is occupied", ErrInvalidPlacement, to)
	}
	b.cells[dst] = b.cells[src]
	b.cells[src] = Cell{}
	return nil
}

// OccupiedCount returns the number of placed letters.
func (b *Board) OccupiedCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Occupied {
			n++
		}
	}
	return n
}

// Snapshot returns a read-only copy of the board.
func (b *Board) Snapshot() BoardView {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return BoardView{rows: b.rows, cols: b.cols, cells: cells}
}

// BoardView is an immutable copy of a board, safe to hand to scanners and
// renderers.
type BoardView struct {
	rows  int
	cols  int
	cells []Cell
}

// Rows returns the number of rows.
func (v BoardView) Rows() int {
	return v.rows
}

// Cols returns the number of columns.
func (v BoardView) Cols() int {
	return v.cols
}

// Cell returns the cell at (row, col), or an empty cell when out of bounds.
func (v BoardView) Cell(row, col int) Cell {
	if row < 0 || row >= v.rows || col < 0 || col >= v.cols {
		return Cell{}
	}
	return v.cells[row*v.cols+col]
}

// IsOccupied reports whether (row, col) holds a letter.
func (v BoardView) IsOccupied(row, col int) bool {
	return v.Cell(row, col).Occupied
}

// Lines renders each row as text, EmptyRune for empty cells.
func (v BoardView) Lines() []string {
	lines := make([]string, v.rows)
	for row := range v.rows {
		var sb strings.Builder
		for col := range v.cols {
			c := v.Cell(row, col)
			if c.Occupied {
				sb.WriteRune(c.Letter)
			} else {
				sb.WriteRune(EmptyRune)
			}
		}
		lines[row] = sb.String()
	}
	return lines
}

// String renders the board as newline-separated rows.
func (v BoardView) String() string {
	return strings.Join(v.Lines(), "\n")
}
