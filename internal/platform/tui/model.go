package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/brickwords/internal/core"
	"github.com/vovakirdan/brickwords/internal/registry"
	"github.com/vovakirdan/brickwords/internal/storage"
)

// resizer is implemented by games that can follow the window size without
// restarting the run.
type resizer interface {
	Resize(width, height int)
}

// runRecorder collects the words of one run and saves the run once it ends.
type runRecorder struct {
	runID string
	words []core.WordRecord
	saved bool
}

func newRunRecorder() runRecorder {
	return runRecorder{runID: uuid.NewString()}
}

// add appends the words reported by one step.
func (r *runRecorder) add(words []core.WordRecord) {
	r.words = append(r.words, words...)
}

// finish stores the run the first time it is called. Empty runs (no score
// and no words) are not stored.
func (r *runRecorder) finish(store *storage.Store, gameID string, score int) error {
	if r.saved {
		return nil
	}
	r.saved = true
	if store == nil || (score == 0 && len(r.words) == 0) {
		return nil
	}
	_, err := store.SaveGame(storage.GameRecord{
		RunID:  r.runID,
		GameID: gameID,
		Score:  score,
		Words:  r.words,
	})
	return err
}

// GameModel is the Bubble Tea model for one running game. It is used on its
// own by the play command and embedded in SessionModel for SSH sessions.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	recorder   runRecorder
	standalone bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. A zero seed is replaced by a time seed.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		recorder:   newRunRecorder(),
	}
}

// WithLogger sets the logger used to report failed saves.
func (m GameModel) WithLogger(logger *log.Logger) GameModel {
	m.logger = logger
	return m
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keyMapper.Keys().Screenshot):
		m.saveScreenshot()
		return m, nil
	case action == core.ActionBack:
		// Leaving mid-run is allowed only from the pause or game over screens.
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
		return m, nil
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize follows the window size. Games that cannot resize in place
// are restarted unless the run is already over.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.recorder = newRunRecorder()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorder = newRunRecorder()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recorder.add(result.Words)

	if m.gameState.GameOver && !m.recorder.saved {
		err := m.recorder.finish(m.store, m.game.ID(), m.gameState.Score)
		if m.logger != nil {
			if err != nil {
				m.logger.Error("could not save run", "game", m.game.ID(), "run", m.recorder.runID, "err", err)
			} else {
				m.logger.Info("run finished", "game", m.game.ID(), "run", m.recorder.runID,
					"score", m.gameState.Score, "words", len(m.recorder.words))
			}
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".brickwords", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunID returns the ID the current run is stored under.
func (m GameModel) RunID() string {
	return m.recorder.runID
}

// Run starts the Bubble Tea program for one game.
// Returns true if the user asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(GameModel); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
