// Package brickwords adapts the Brickwords rules engine to the terminal
// platform: it maps input actions to engine commands, converts ticks to
// elapsed time and renders the board, HUD and word banner.
package brickwords

import (
	"fmt"
	"time"

	"github.com/vovakirdan/brickwords/internal/config"
	platformcore "github.com/vovakirdan/brickwords/internal/core"
	"github.com/vovakirdan/brickwords/internal/dictionary"
	"github.com/vovakirdan/brickwords/internal/games/brickwords/core"
	"github.com/vovakirdan/brickwords/internal/registry"
)

// Mode IDs. The escalating mode overrides the configured pause policy.
const (
	ModeClassic    = "brickwords"
	ModeEscalating = "brickwords_escalating"
)

// Package-level variables for configuration
var (
	configPath       string
	wordsPath        string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom YAML config path. Empty means the search path.
func SetConfigPath(path string) {
	configPath = path
}

// SetWordsPath sets a custom word list. Empty means the built-in list.
func SetWordsPath(path string) {
	wordsPath = path
}

// SetDifficultyPreset selects a fixed fall interval preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// GetDifficultyPreset returns the currently selected preset.
func GetDifficultyPreset() config.DifficultyPreset {
	return difficultyPreset
}

func init() {
	registry.Register(ModeClassic, func() registry.Game {
		return New()
	})
	registry.Register(ModeEscalating, func() registry.Game {
		return NewEscalating()
	})
}

// Game implements registry.Game on top of a core.Session.
type Game struct {
	mode string

	// Injected settings; nil/zero means load from package settings on Reset.
	cfg       *config.BrickwordsConfig
	words     core.WordSet
	preset    config.DifficultyPreset
	presetSet bool

	session     *core.Session
	unsubscribe func()
	loadErr     error

	screenW  int
	screenH  int
	tickRate int
	tick     uint64
	tooSmall bool

	stepWords []platformcore.WordRecord
	banner    banner
}

// New creates the classic mode (fixed-ratio pause tokens).
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEscalating creates the mode whose pause tokens get more expensive.
func NewEscalating() *Game {
	return &Game{mode: ModeEscalating}
}

// NewWithConfig creates a game with explicit settings, bypassing the config
// search path and the word list file. Used by tests and the sim command.
func NewWithConfig(mode string, cfg config.BrickwordsConfig, words core.WordSet) *Game {
	return &Game{mode: mode, cfg: &cfg, words: words}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.mode
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEscalating {
		return "Brickwords (Escalating)"
	}
	return "Brickwords"
}

// SetDifficulty overrides the package-level preset for this game only.
// Takes effect on the next Reset.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	g.preset = preset
	g.presetSet = true
}

// SessionConfig converts a loaded YAML config into engine settings.
func SessionConfig(c config.BrickwordsConfig, seed int64) core.Config {
	freqs := make([]core.LetterWeight, 0, len(c.Letters.Frequencies))
	for _, f := range c.Letters.Frequencies {
		if f.Letter == "" {
			continue
		}
		freqs = append(freqs, core.LetterWeight{Letter: rune(f.Letter[0]), Weight: f.Weight})
	}
	return core.Config{
		Rows:            c.Board.Rows,
		Cols:            c.Board.Cols,
		FallInterval:    c.Timing.FallInterval(),
		Frequencies:     freqs,
		TwoLetterChance: c.Letters.TwoLetterChance,
		Progression: core.ProgressionConfig{
			Policy:           core.PausePolicy(c.Pause.Policy),
			Ratio:            c.Pause.Ratio,
			InitialThreshold: c.Pause.InitialThreshold,
		},
		Seed: seed,
	}
}

// settings resolves config and word set, loading them on first use.
func (g *Game) settings() (config.BrickwordsConfig, core.WordSet, error) {
	var cfg config.BrickwordsConfig
	if g.cfg != nil {
		cfg = *g.cfg
	} else {
		loaded, err := config.LoadBrickwords(configPath)
		if err != nil {
			return cfg, nil, err
		}
		preset := difficultyPreset
		if g.presetSet {
			preset = g.preset
		}
		config.ApplyBrickwordsPreset(&loaded, preset)
		cfg = loaded
	}
	if g.mode == ModeEscalating {
		cfg.Pause.Policy = config.PolicyEscalating
	}

	if g.words == nil {
		dict, err := dictionary.Load(wordsPath)
		if err != nil {
			return cfg, nil, err
		}
		g.words = dict
	}
	return cfg, g.words, nil
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.tick = 0
	g.stepWords = nil
	g.banner = banner{}
	g.loadErr = nil

	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}

	cfg, words, err := g.settings()
	if err == nil {
		g.session, err = core.NewSession(SessionConfig(cfg, rc.Seed), words)
	}
	if err != nil {
		g.session = nil
		g.loadErr = err
		return
	}

	g.unsubscribe = g.session.Subscribe(g.onEvent)
	g.checkScreenSize()
}

// Resize updates the screen size without restarting the run. A window that
// becomes too small pauses the game until it grows again.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for board and HUD.
func (g *Game) checkScreenSize() {
	w, h := g.layoutSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// onEvent collects what the platform and the renderer need from the engine.
func (g *Game) onEvent(e core.Event) {
	if cleared, ok := e.(core.WordsCleared); ok {
		recs := make([]platformcore.WordRecord, 0, len(cleared.Words))
		for _, w := range cleared.Words {
			recs = append(recs, platformcore.WordRecord{Word: w.Word, Score: w.Score})
		}
		g.stepWords = append(g.stepWords, recs...)
		g.banner.show(recs, g.tickRate)
	}
}

// Commands maps one input frame to engine commands, pause first.
func Commands(in platformcore.InputFrame) []core.Command {
	var cmds []core.Command
	if in.Has(platformcore.ActionPause) {
		cmds = append(cmds, core.CmdTogglePause)
	}
	if in.Has(platformcore.ActionUp) {
		cmds = append(cmds, core.CmdRotate)
	}
	if in.Has(platformcore.ActionLeft) {
		cmds = append(cmds, core.CmdMoveLeft)
	}
	if in.Has(platformcore.ActionRight) {
		cmds = append(cmds, core.CmdMoveRight)
	}
	if in.Has(platformcore.ActionDown) {
		cmds = append(cmds, core.CmdSoftDrop)
	}
	return cmds
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.stepWords = nil
	g.banner.step()

	if g.session == nil || g.tooSmall || g.session.GameOver() {
		return platformcore.StepResult{State: g.State()}
	}

	dt := time.Second / time.Duration(g.tickRate)
	// Rejected commands (blocked, throttled, no token) are ignored.
	_ = g.session.Step(dt, Commands(in)...)

	return platformcore.StepResult{State: g.State(), Words: g.stepWords}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{GameOver: true}
	}
	return platformcore.GameState{
		Score:    g.session.Progression().Score,
		GameOver: g.session.GameOver(),
		Paused:   g.session.Paused() || g.tooSmall,
	}
}

// Session exposes the engine for inspection.
func (g *Game) Session() *core.Session {
	return g.session
}

// Err returns the error that prevented the last Reset from starting a game.
func (g *Game) Err() error {
	return g.loadErr
}

// banner shows the last cleared words for about a second.
type banner struct {
	text      string
	ticksLeft int
	total     int
}

func (b *banner) show(words []platformcore.WordRecord, tickRate int) {
	if len(words) == 0 {
		return
	}
	text := ""
	for i, w := range words {
		if i > 0 {
			text += "  "
		}
		text += fmt.Sprintf("%s +%d", w.Word, w.Score)
	}
	b.text = text
	b.total = tickRate
	b.ticksLeft = tickRate
}

func (b *banner) step() {
	if b.ticksLeft > 0 {
		b.ticksLeft--
	}
}

// visible reports whether the banner is still on screen.
func (b *banner) visible() bool {
	return b.ticksLeft > 0 && b.text != ""
}

// fading reports whether the banner is in its last third.
func (b *banner) fading() bool {
	return b.ticksLeft*3 < b.total
}
