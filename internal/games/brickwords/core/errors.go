package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCommand is returned for commands that cannot apply in the
	// current state. Callers are expected to ignore it.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrInvalidPlacement is returned when a board write targets an
	// occupied or out-of-bounds cell. The board is left unchanged.
	ErrInvalidPlacement = errors.New("invalid placement")

	// ErrGameOver marks the terminal state reached on a spawn or lock
	// collision. Only Reset leaves it.
	ErrGameOver = errors.New("game over")

	// ErrPaused is returned for commands other than TogglePause while paused.
	ErrPaused = errors.New("session paused")

	// ErrThrottled is returned for a second horizontal move or rotation
	// within the same tick.
	ErrThrottled = fmt.Errorf("%w: one move and one rotation per tick", ErrInvalidCommand)

	// ErrNoPauseTokens is returned when pausing without a token.
	ErrNoPauseTokens = fmt.Errorf("%w: no pause tokens", ErrInvalidCommand)
)
