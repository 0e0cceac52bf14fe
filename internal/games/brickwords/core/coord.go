// Package core holds the Brickwords rules engine: board, falling piece,
// word scanner, clear/settle and scoring. It is driven one tick at a time by
// a Session and never touches the terminal.
package core

import "fmt"

// Coord addresses a board cell. Row 0 is the top row; rows grow downward.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}
