package core

import (
	"fmt"
	"math/rand"
)

// PieceCell is one tile of a piece, or one locked tile.
type PieceCell struct {
	Row    int
	Col    int
	Letter rune
}

// Coord returns the cell position.
func (p PieceCell) Coord() Coord {
	return C(p.Row, p.Col)
}

// Orientation is the offset of the second tile from the anchor tile.
type Orientation int

const (
	OrientRight Orientation = iota
	OrientBelow
	OrientLeft
	OrientAbove
)

// Offset returns the (row, col) delta of the second tile.
func (o Orientation) Offset() (dr, dc int) {
	switch o {
	case OrientRight:
		return 0, 1
	case OrientBelow:
		return 1, 0
	case OrientLeft:
		return 0, -1
	default:
		return -1, 0
	}
}

// Next returns the following orientation in the rotation cycle.
func (o Orientation) Next() Orientation {
	return (o + 1) % 4
}

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientRight:
		return "right"
	case OrientBelow:
		return "below"
	case OrientLeft:
		return "left"
	case OrientAbove:
		return "above"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Piece is the falling unit of one or two tiles. Parts[0] is the anchor.
type Piece struct {
	Parts       []PieceCell
	Orientation Orientation
	Vertical    bool
}

// Clone returns a deep copy of the piece.
func (p Piece) Clone() Piece {
	parts := make([]PieceCell, len(p.Parts))
	copy(parts, p.Parts)
	p.Parts = parts
	return p
}

// Letters returns the piece letters in part order.
func (p Piece) Letters() string {
	letters := make([]rune, len(p.Parts))
	for i, part := range p.Parts {
		letters[i] = part.Letter
	}
	return string(letters)
}

// Controller owns the falling piece and moves it against board occupancy.
// Every operation validates all parts before touching any of them.
type Controller struct {
	board *Board
	gen   *Generator
	rng   *rand.Rand
	piece *Piece
}

// NewController creates an idle controller.
func NewController(board *Board, gen *Generator, rng *rand.Rand) *Controller {
	return &Controller{board: board, gen: gen, rng: rng}
}

// Active returns a copy of the falling piece, if any.
func (c *Controller) Active() (Piece, bool) {
	if c.piece == nil {
		return Piece{}, false
	}
	return c.piece.Clone(), true
}

// Spawn takes the queued letters and places a new piece on row 0.
// Vertical pieces start at the middle column, horizontal ones at a random
// column where they fit. Returns ErrGameOver if a target cell is occupied.
func (c *Controller) Spawn() (Piece, error) {
	letters := c.gen.Next()
	vertical := c.rng.Float64() < 0.5

	cols := c.board.Cols()
	var startCol int
	if vertical {
		startCol = cols / 2
	} else {
		startCol = c.rng.Intn(cols - len(letters) + 1)
	}

	p := &Piece{Vertical: vertical, Orientation: OrientRight}
	if vertical && len(letters) == 2 {
		p.Orientation = OrientBelow
	}
	for i, letter := range letters {
		cell := PieceCell{Row: 0, Col: startCol, Letter: letter}
		if i > 0 {
			dr, dc := p.Orientation.Offset()
			cell.Row += dr
			cell.Col += dc
		}
		p.Parts = append(p.Parts, cell)
	}

	for _, part := range p.Parts {
		if c.board.IsOccupied(part.Row, part.Col) {
			return p.Clone(), fmt.Errorf("%w: spawn blocked at %v", ErrGameOver, part.Coord())
		}
	}

	c.piece = p
	return p.Clone(), nil
}

// canShift reports whether every part can move by (dr, dc).
func (c *Controller) canShift(dr, dc int) bool {
	for _, part := range c.piece.Parts {
		if c.board.IsOccupied(part.Row+dr, part.Col+dc) {
			return false
		}
	}
	return true
}

func (c *Controller) shift(dr, dc int) {
	for i := range c.piece.Parts {
		c.piece.Parts[i].Row += dr
		c.piece.Parts[i].Col += dc
	}
}

// MoveHorizontal shifts the piece one column left (dx=-1) or right (dx=+1).
// Returns false and leaves the piece untouched if any part is blocked.
func (c *Controller) MoveHorizontal(dx int) bool {
	if c.piece == nil || (dx != -1 && dx != 1) {
		return false
	}
	if !c.canShift(0, dx) {
		return false
	}
	c.shift(0, dx)
	return true
}

// Rotate moves the second tile to the next orientation around the anchor.
// One-tile pieces never rotate.
func (c *Controller) Rotate() bool {
	if c.piece == nil || len(c.piece.Parts) != 2 {
		return false
	}
	anchor := c.piece.Parts[0]
	next := c.piece.Orientation.Next()
	dr, dc := next.Offset()
	row, col := anchor.Row+dr, anchor.Col+dc
	if c.board.IsOccupied(row, col) {
		return false
	}
	c.piece.Parts[1].Row = row
	c.piece.Parts[1].Col = col
	c.piece.Orientation = next
	return true
}

// Fall moves the piece down one row. Returns false when any part is
// resting on the floor or a placed tile, meaning the piece must lock.
func (c *Controller) Fall() bool {
	if c.piece == nil || !c.canShift(1, 0) {
		return false
	}
	c.shift(1, 0)
	return true
}

// Lock writes the piece into the board and discards it.
// All target cells are checked first; on collision nothing is written,
// the piece is dropped and ErrGameOver is returned.
func (c *Controller) Lock() ([]PieceCell, error) {
	if c.piece == nil {
		return nil, fmt.Errorf("%w: no active piece", ErrInvalidCommand)
	}
	p := c.piece
	c.piece = nil

	for _, part := range p.Parts {
		if c.board.IsOccupied(part.Row, part.Col) {
			return nil, fmt.Errorf("%w: lock collided at %v", ErrGameOver, part.Coord())
		}
	}
	for _, part := range p.Parts {
		if err := c.board.Place(part.Row, part.Col, part.Letter); err != nil {
			// Unreachable after the pre-check; kept so a broken board never goes unnoticed.
			return nil, fmt.Errorf("%w: %w", ErrGameOver, err)
		}
	}

	cells := make([]PieceCell, len(p.Parts))
	copy(cells, p.Parts)
	return cells, nil
}

// Discard drops the falling piece without locking it.
func (c *Controller) Discard() {
	c.piece = nil
}
