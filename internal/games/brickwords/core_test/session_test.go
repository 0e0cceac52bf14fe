package core_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickwords/internal/games/brickwords/core"
)

func newSession(t *testing.T, cfg core.Config, ws core.WordSet) *core.Session {
	t.Helper()
	s, err := core.NewSession(cfg, ws)
	require.NoError(t, err)
	return s
}

// aaaConfig builds a 3-column board where every tile is an A and "AAA" is
// the only word, so clears happen quickly and deterministically.
func aaaConfig(seed int64) core.Config {
	cfg := core.DefaultConfig()
	cfg.Rows = 6
	cfg.Cols = 3
	cfg.Frequencies = []core.LetterWeight{{Letter: 'A', Weight: 1}}
	cfg.TwoLetterChance = 0
	cfg.Progression = core.ProgressionConfig{Policy: core.PolicyFixedRatio, Ratio: 1}
	cfg.Seed = seed
	return cfg
}

func TestNewSessionValidates(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Cols = 2
	_, err := core.NewSession(cfg, words())
	assert.Error(t, err)

	cfg = core.DefaultConfig()
	cfg.Cols = core.MaxBoardSize + 1
	_, err = core.NewSession(cfg, words())
	assert.Error(t, err)

	cfg = core.DefaultConfig()
	cfg.FallInterval = 0
	_, err = core.NewSession(cfg, words())
	assert.Error(t, err)

	cfg = core.DefaultConfig()
	cfg.Progression.Policy = "bogus"
	_, err = core.NewSession(cfg, words())
	assert.Error(t, err)
}

func TestNoneCommandIsNoOp(t *testing.T) {
	s := newSession(t, core.DefaultConfig(), words())
	var rec recorder
	s.Subscribe(rec.record)

	assert.NoError(t, s.Apply(core.CmdNone), "accepted before the first piece")
	require.NoError(t, s.Step(0))
	before, _ := s.Piece()
	n := len(rec.events)

	assert.NoError(t, s.Apply(core.CmdNone))
	assert.NoError(t, s.Step(0, core.CmdNone, core.CmdNone))

	after, _ := s.Piece()
	assert.Equal(t, before, after)
	assert.Len(t, rec.events, n)
	assert.ErrorIs(t, s.Apply(core.Command(99)), core.ErrInvalidCommand)
}

func TestSessionStartsIdle(t *testing.T) {
	s := newSession(t, core.DefaultConfig(), words())
	var rec recorder
	s.Subscribe(rec.record)

	_, ok := s.Piece()
	assert.False(t, ok)
	assert.ErrorIs(t, s.Apply(core.CmdMoveLeft), core.ErrInvalidCommand)

	require.NoError(t, s.Step(0))
	_, ok = s.Piece()
	assert.True(t, ok)
	assert.Equal(t, 1, rec.count(isSpawn))
}

func TestFallTimerUsesStrictInterval(t *testing.T) {
	s := newSession(t, core.DefaultConfig(), words())
	s.Start()
	start, _ := s.Piece()

	require.NoError(t, s.Tick(500*time.Millisecond))
	p, _ := s.Piece()
	assert.Equal(t, start.Parts[0].Row, p.Parts[0].Row, "exactly one interval does not drop")

	require.NoError(t, s.Tick(time.Millisecond))
	p, _ = s.Piece()
	assert.Equal(t, start.Parts[0].Row+1, p.Parts[0].Row)
}

func TestSessionThrottlesMovesAndRotations(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.TwoLetterChance = 1
	cfg.Seed = 3
	s := newSession(t, cfg, words())
	require.NoError(t, s.Step(0))

	err := s.Step(0, core.CmdMoveLeft, core.CmdMoveRight, core.CmdRotate, core.CmdRotate)
	assert.ErrorIs(t, err, core.ErrThrottled)
	assert.ErrorIs(t, err, core.ErrInvalidCommand)

	// The limits reset with every step.
	assert.NoError(t, s.Step(0, core.CmdMoveLeft, core.CmdRotate))
	assert.NoError(t, s.Step(0, core.CmdMoveRight, core.CmdSoftDrop, core.CmdSoftDrop))
}

func TestSoftDropLocksAndSpawns(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 8
	s := newSession(t, cfg, words())
	var rec recorder
	s.Subscribe(rec.record)
	s.Start()

	for range cfg.Rows {
		require.NoError(t, s.Apply(core.CmdSoftDrop))
	}

	locked := rec.count(func(e core.Event) bool {
		_, ok := e.(core.PieceLocked)
		return ok
	})
	assert.Equal(t, 1, locked)
	assert.Equal(t, 2, rec.count(isSpawn))
	bottom := s.Board().Lines()[cfg.Rows-1]
	assert.NotEqual(t, strings.Repeat(string(core.EmptyRune), cfg.Cols), bottom, "the locked piece rests on the floor")
	checkCellInvariant(t, s.Board())
}

func TestGameOverFiresOnce(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 21
	s := newSession(t, cfg, words())
	var rec recorder
	s.Subscribe(rec.record)

	for i := 0; i < 10000 && !s.GameOver(); i++ {
		_ = s.Step(0, core.CmdSoftDrop)
	}
	require.True(t, s.GameOver())

	spawnsAtEnd := rec.count(isSpawn)
	for range 50 {
		err := s.Step(time.Second, core.CmdSoftDrop, core.CmdMoveLeft)
		assert.ErrorIs(t, err, core.ErrGameOver)
		assert.ErrorIs(t, s.Apply(core.CmdRotate), core.ErrInvalidCommand)
	}

	assert.Equal(t, 1, rec.count(isGameOver))
	assert.Equal(t, spawnsAtEnd, rec.count(isSpawn), "no spawn after game over")
	_, isOver := rec.events[len(rec.events)-1].(core.GameOver)
	assert.True(t, isOver, "GameOver is the last event")
	_, ok := s.Piece()
	assert.False(t, ok)
	checkCellInvariant(t, s.Board())
}

func TestClearsGrantTokensAndPauseGates(t *testing.T) {
	s := newSession(t, aaaConfig(5), words("AAA"))
	var rec recorder
	s.Subscribe(rec.record)

	for i := 0; i < 1000 && s.Progression().PauseTokens == 0; i++ {
		require.NoError(t, s.Step(0, core.CmdSoftDrop))
	}
	prog := s.Progression()
	require.Positive(t, prog.PauseTokens)
	assert.Equal(t, prog.TokensGranted, rec.count(isTokenGranted))
	assert.Positive(t, prog.Score)
	assert.True(t, core.IsSettled(s.Board()))

	require.NoError(t, s.Apply(core.CmdTogglePause))
	assert.True(t, s.Paused())
	assert.Equal(t, prog.PauseTokens-1, s.Progression().PauseTokens)

	before, _ := s.Piece()
	err := s.Step(10*time.Second, core.CmdMoveLeft)
	assert.ErrorIs(t, err, core.ErrPaused)
	after, _ := s.Piece()
	assert.Equal(t, before, after, "nothing moves while paused")

	require.NoError(t, s.Apply(core.CmdTogglePause))
	assert.False(t, s.Paused())
	assert.Equal(t, prog.PauseTokens-1, s.Progression().PauseTokens, "resuming is free")
}

func TestPauseWithoutTokens(t *testing.T) {
	s := newSession(t, core.DefaultConfig(), words())
	s.Start()

	err := s.Apply(core.CmdTogglePause)
	assert.ErrorIs(t, err, core.ErrNoPauseTokens)
	assert.False(t, s.Paused())
}

func TestSameSeedSameGame(t *testing.T) {
	script := []core.Command{
		core.CmdMoveLeft, core.CmdRotate, core.CmdSoftDrop, core.CmdMoveRight,
		core.CmdSoftDrop, core.CmdNone, core.CmdMoveRight, core.CmdRotate,
	}
	play := func() (string, int) {
		cfg := core.DefaultConfig()
		cfg.Seed = 1234
		cfg.TwoLetterChance = 0.4
		s := newSession(t, cfg, words("TEA", "EAT", "ATE", "TEN", "NET", "SET", "SEA"))
		n := 0
		s.Subscribe(func(core.Event) { n++ })
		for i := 0; i < 2000 && !s.GameOver(); i++ {
			_ = s.Step(100*time.Millisecond, script[i%len(script)])
		}
		return s.Board().String(), n
	}

	board1, events1 := play()
	board2, events2 := play()
	assert.Equal(t, board1, board2)
	assert.Equal(t, events1, events2)
}

func TestResetKeepsSubscribers(t *testing.T) {
	s := newSession(t, core.DefaultConfig(), words())
	var rec recorder
	unsubscribe := s.Subscribe(rec.record)

	s.Start()
	require.NoError(t, s.Reset(77))
	assert.False(t, s.Started())
	assert.Equal(t, int64(77), s.Seed())
	assert.Zero(t, s.Progression().Score)

	s.Start()
	assert.Equal(t, 2, rec.count(isSpawn))

	unsubscribe()
	require.NoError(t, s.Reset(78))
	s.Start()
	assert.Equal(t, 2, rec.count(isSpawn), "unsubscribed callbacks get nothing")
}
