package core

import "github.com/kamstrup/intmap"

// SettleMove is the net displacement of one tile during a settle.
type SettleMove struct {
	From Coord
	To   Coord
}

// ClearedWord is a match after it has been removed from the board.
type ClearedWord struct {
	Word      string
	Cells     []Coord
	Score     int
	Direction Direction
}

// ClearResult summarises one ClearMatches call.
type ClearResult struct {
	Words        []ClearedWord
	Score        int
	CellsCleared int
}

// ClearMatches empties every matched cell and scores every match.
// A cell shared by a horizontal and a vertical match is cleared once but
// counts towards both words.
func ClearMatches(b *Board, matches []Match) ClearResult {
	var res ClearResult
	for _, m := range matches {
		cw := ClearedWord{
			Word:      m.Word(),
			Cells:     m.Cells(),
			Score:     WordScore(m.Len()),
			Direction: m.Direction,
		}
		for _, c := range cw.Cells {
			if b.InBounds(c.Row, c.Col) && b.IsOccupied(c.Row, c.Col) {
				b.Clear(c.Row, c.Col)
				res.CellsCleared++
			}
		}
		res.Score += cw.Score
		res.Words = append(res.Words, cw)
	}
	return res
}

// Settle drops floating tiles until none can fall. Each sweep walks the
// columns left to right and the rows from the second-to-last up to the top,
// moving a tile one row down when the cell beneath it is empty.
// The returned moves give the net start and end of every tile that moved,
// in board order of the end positions.
func Settle(b *Board) []SettleMove {
	rows, cols := b.Rows(), b.Cols()
	// current index -> starting index
	origins := intmap.New[int, int](cols)
	moved := false

	for {
		changed := false
		for col := range cols {
			for row := rows - 2; row >= 0; row-- {
				if !b.IsOccupied(row, col) || b.IsOccupied(row+1, col) {
					continue
				}
				from, to := C(row, col), C(row+1, col)
				if err := b.Move(from, to); err != nil {
					continue
				}
				src, dst := row*cols+col, (row+1)*cols+col
				origin, ok := origins.Get(src)
				if !ok {
					origin = src
				}
				origins.Del(src)
				origins.Put(dst, origin)
				changed = true
				moved = true
			}
		}
		if !changed {
			break
		}
	}
	if !moved {
		return nil
	}

	var moves []SettleMove
	for row := range rows {
		for col := range cols {
			origin, ok := origins.Get(row*cols + col)
			if !ok {
				continue
			}
			moves = append(moves, SettleMove{
				From: C(origin/cols, origin%cols),
				To:   C(row, col),
			})
		}
	}
	return moves
}

// IsSettled reports whether every tile rests on the floor or on another tile.
func IsSettled(v BoardView) bool {
	for row := 0; row < v.Rows()-1; row++ {
		for col := range v.Cols() {
			if v.IsOccupied(row, col) && !v.IsOccupied(row+1, col) {
				return false
			}
		}
	}
	return true
}
