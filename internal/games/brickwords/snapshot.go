package brickwords

import "github.com/vovakirdan/brickwords/internal/games/brickwords/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
	StateError       GameStateType = "error"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick          uint64
	Mode          string
	Board         []string
	Piece         []core.PieceCell
	Next          string
	Score         int
	WordsCleared  int
	PauseTokens   int
	NextThreshold int
	State         GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Tick: g.tick, Mode: g.mode}
	if g.session == nil {
		snap.State = StateError
		return snap
	}

	prog := g.session.Progression()
	snap.Board = g.session.Board().Lines()
	if p, ok := g.session.Piece(); ok {
		snap.Piece = p.Parts
	}
	snap.Next = string(g.session.NextPiece())
	snap.Score = prog.Score
	snap.WordsCleared = prog.WordsCleared
	snap.PauseTokens = prog.PauseTokens
	snap.NextThreshold = prog.NextThreshold

	switch {
	case g.session.GameOver():
		snap.State = StateGameOver
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.session.Paused():
		snap.State = StatePaused
	default:
		snap.State = StatePlaying
	}
	return snap
}
