package core

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"
)

// Config holds everything a Session needs besides the word set.
type Config struct {
	Rows            int
	Cols            int
	FallInterval    time.Duration
	Frequencies     []LetterWeight
	TwoLetterChance float64
	Progression     ProgressionConfig
	Seed            int64
}

// DefaultConfig returns a 12x8 board falling every 500ms.
func DefaultConfig() Config {
	return Config{
		Rows:            12,
		Cols:            8,
		FallInterval:    500 * time.Millisecond,
		Frequencies:     DefaultFrequencies(),
		TwoLetterChance: 0.1,
		Progression:     DefaultProgressionConfig(),
	}
}

// MaxBoardSize bounds both board dimensions, which keeps the longest
// possible word and the running score within an int.
const MaxBoardSize = 32

// Validate rejects configurations a session cannot run with.
func (c Config) Validate() error {
	if c.Rows < 3 || c.Cols < 3 {
		return fmt.Errorf("session: board must be at least 3x3, got %dx%d", c.Rows, c.Cols)
	}
	if c.Rows > MaxBoardSize || c.Cols > MaxBoardSize {
		return fmt.Errorf("session: board must be at most %dx%d, got %dx%d",
			MaxBoardSize, MaxBoardSize, c.Rows, c.Cols)
	}
	if c.FallInterval <= 0 {
		return fmt.Errorf("session: fall interval must be positive, got %v", c.FallInterval)
	}
	if c.TwoLetterChance < 0 || c.TwoLetterChance > 1 {
		return fmt.Errorf("session: two-letter chance %v outside [0,1]", c.TwoLetterChance)
	}
	return c.Progression.Validate()
}

// Command is a discrete player input.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdSoftDrop
	CmdRotate
	CmdTogglePause
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdMoveLeft:
		return "move_left"
	case CmdMoveRight:
		return "move_right"
	case CmdSoftDrop:
		return "soft_drop"
	case CmdRotate:
		return "rotate"
	case CmdTogglePause:
		return "toggle_pause"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

type subscriber struct {
	id int
	fn func(Event)
}

// Session is one independent game. It is not safe for concurrent use; a
// single driver calls Step (or Tick and Apply) and receives events
// synchronously through Subscribe.
type Session struct {
	cfg   Config
	words WordSet

	rng   *rand.Rand
	board *Board
	gen   *Generator
	ctrl  *Controller
	prog  *Progression

	seed      int64
	fallTimer time.Duration
	started   bool
	over      bool
	moved     bool
	rotated   bool

	subs      []subscriber
	nextSubID int
}

// NewSession validates cfg and creates an idle session. The first piece
// spawns on Start or on the first Step.
func NewSession(cfg Config, words WordSet) (*Session, error) {
	if len(cfg.Frequencies) == 0 {
		cfg.Frequencies = DefaultFrequencies()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{cfg: cfg, words: words}
	if err := s.Reset(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset starts over with a fresh board and seed. Subscribers are kept.
func (s *Session) Reset(seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	gen, err := NewGenerator(rng, s.cfg.Frequencies, s.cfg.TwoLetterChance)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	s.seed = seed
	s.rng = rng
	s.gen = gen
	s.board = NewBoard(s.cfg.Rows, s.cfg.Cols)
	s.ctrl = NewController(s.board, gen, rng)
	s.prog = NewProgression(s.cfg.Progression)
	s.fallTimer = 0
	s.started = false
	s.over = false
	s.moved = false
	s.rotated = false
	return nil
}

// Subscribe registers fn for every future event and returns a function
// that removes it.
func (s *Session) Subscribe(fn func(Event)) func() {
	s.nextSubID++
	id := s.nextSubID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool {
			return sub.id == id
		})
	}
}

func (s *Session) emit(e Event) {
	for _, sub := range slices.Clone(s.subs) {
		sub.fn(e)
	}
}

// Start spawns the first piece. Later calls do nothing.
func (s *Session) Start() {
	if s.started || s.over {
		return
	}
	s.started = true
	s.spawn()
}

// Tick advances the fall timer by dt.
func (s *Session) Tick(dt time.Duration) error {
	return s.Step(dt)
}

// Step applies cmds in order, then advances the fall timer by dt. The piece
// drops one row each time the timer exceeds the fall interval. Rejected
// commands are reported through the joined error; they never stop the tick.
func (s *Session) Step(dt time.Duration, cmds ...Command) error {
	if s.over {
		return fmt.Errorf("%w: %w", ErrInvalidCommand, ErrGameOver)
	}
	s.Start()

	var errs []error
	for _, cmd := range cmds {
		if err := s.Apply(cmd); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", cmd, err))
		}
	}

	if !s.over && !s.prog.Paused {
		s.fallTimer += dt
		if s.fallTimer > s.cfg.FallInterval {
			s.fallTimer = 0
			s.drop()
		}
	}

	s.moved = false
	s.rotated = false
	return errors.Join(errs...)
}

// Apply executes one command immediately. Only one horizontal move and one
// rotation are accepted between two Steps. CmdNone is always accepted and
// does nothing.
func (s *Session) Apply(cmd Command) error {
	if cmd == CmdNone {
		return nil
	}
	if s.over {
		return fmt.Errorf("%w: %w", ErrInvalidCommand, ErrGameOver)
	}
	if cmd == CmdTogglePause {
		if err := s.prog.TogglePause(); err != nil {
			return err
		}
		s.emit(PausedChanged{Paused: s.prog.Paused})
		return nil
	}
	if s.prog.Paused {
		return fmt.Errorf("%w: %w", ErrInvalidCommand, ErrPaused)
	}
	if _, ok := s.ctrl.Active(); !ok {
		return fmt.Errorf("%w: no active piece", ErrInvalidCommand)
	}

	switch cmd {
	case CmdMoveLeft, CmdMoveRight:
		if s.moved {
			return ErrThrottled
		}
		s.moved = true
		dx := -1
		if cmd == CmdMoveRight {
			dx = 1
		}
		if s.ctrl.MoveHorizontal(dx) {
			s.emitPiece(func(p Piece) Event { return PieceMoved{Parts: p.Parts} })
		}
	case CmdRotate:
		if s.rotated {
			return ErrThrottled
		}
		s.rotated = true
		if s.ctrl.Rotate() {
			s.emitPiece(func(p Piece) Event {
				return PieceRotated{Parts: p.Parts, Orientation: p.Orientation}
			})
		}
	case CmdSoftDrop:
		s.drop()
	default:
		return fmt.Errorf("%w: unknown command %s", ErrInvalidCommand, cmd)
	}
	return nil
}

func (s *Session) emitPiece(build func(Piece) Event) {
	if p, ok := s.ctrl.Active(); ok {
		s.emit(build(p))
	}
}

// drop moves the piece down one row or locks it.
func (s *Session) drop() {
	if s.ctrl.Fall() {
		s.emitPiece(func(p Piece) Event { return PieceMoved{Parts: p.Parts} })
		return
	}
	s.lock()
}

// lock writes the piece, clears any words, settles and spawns the next piece.
func (s *Session) lock() {
	cells, err := s.ctrl.Lock()
	if err != nil {
		s.endGame()
		return
	}
	s.emit(PieceLocked{Cells: cells})

	if matches := ScanAll(s.board.Snapshot(), s.words); len(matches) > 0 {
		res := ClearMatches(s.board, matches)
		s.emit(WordsCleared{Words: res.Words})

		if moves := Settle(s.board); len(moves) > 0 {
			s.emit(TilesSettled{Moves: moves})
		}

		granted := s.prog.Record(len(res.Words), res.Score)
		s.emit(ScoreChanged{Score: s.prog.Score})
		for i := range granted {
			s.emit(TokenGranted{Tokens: s.prog.PauseTokens - granted + i + 1})
		}
	}

	s.spawn()
}

func (s *Session) spawn() {
	p, err := s.ctrl.Spawn()
	if err != nil {
		s.endGame()
		return
	}
	s.emit(PieceSpawned{Parts: p.Parts})
}

func (s *Session) endGame() {
	if s.over {
		return
	}
	s.over = true
	s.ctrl.Discard()
	s.emit(GameOver{Score: s.prog.Score})
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Seed returns the seed of the current game.
func (s *Session) Seed() int64 {
	return s.seed
}

// Board returns a snapshot of the placed tiles.
func (s *Session) Board() BoardView {
	return s.board.Snapshot()
}

// Piece returns the falling piece, if any.
func (s *Session) Piece() (Piece, bool) {
	return s.ctrl.Active()
}

// NextPiece returns the letters of the queued piece.
func (s *Session) NextPiece() []rune {
	return s.gen.Peek()
}

// Progression returns a copy of the score and token state.
func (s *Session) Progression() Progression {
	return *s.prog
}

// Started reports whether the first piece has spawned.
func (s *Session) Started() bool {
	return s.started
}

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool {
	return s.over
}

// Paused reports whether the session is paused.
func (s *Session) Paused() bool {
	return s.prog.Paused
}
