package core

// Event is emitted by a Session after a state change.
// The set of events is closed; switch on the concrete type.
type Event interface {
	isEvent()
}

// PieceSpawned is emitted when a new piece enters row 0.
type PieceSpawned struct {
	Parts []PieceCell
}

func (PieceSpawned) isEvent() {}

// PieceMoved is emitted after a horizontal move or a one-row fall.
type PieceMoved struct {
	Parts []PieceCell
}

func (PieceMoved) isEvent() {}

// PieceRotated is emitted after a successful rotation.
type PieceRotated struct {
	Parts       []PieceCell
	Orientation Orientation
}

func (PieceRotated) isEvent() {}

// PieceLocked is emitted when a piece's tiles are written into the board.
type PieceLocked struct {
	Cells []PieceCell
}

func (PieceLocked) isEvent() {}

// WordsCleared lists the words removed by one lock.
type WordsCleared struct {
	Words []ClearedWord
}

func (WordsCleared) isEvent() {}

// TilesSettled lists the tiles that fell after a clear.
type TilesSettled struct {
	Moves []SettleMove
}

func (TilesSettled) isEvent() {}

// ScoreChanged carries the new total score.
type ScoreChanged struct {
	Score int
}

func (ScoreChanged) isEvent() {}

// TokenGranted carries the pause-token balance after a grant.
type TokenGranted struct {
	Tokens int
}

func (TokenGranted) isEvent() {}

// PausedChanged is emitted when the session pauses or resumes.
type PausedChanged struct {
	Paused bool
}

func (PausedChanged) isEvent() {}

// GameOver is emitted once when the session ends.
type GameOver struct {
	Score int
}

func (GameOver) isEvent() {}
