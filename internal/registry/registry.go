// Package registry keeps the game modes the CLI, menus and SSH server can
// start. Modes register a factory from an init() function, so the platform
// never imports a game package directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/brickwords/internal/core"
)

// Game is what the platform drives: one fixed tick at a time, rendered into
// a character screen. Implementations hold pure game logic and never touch
// Bubble Tea.
type Game interface {
	// ID is the stable mode identifier used on the command line and as the
	// score key (e.g. "brickwords").
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new game for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions pressed during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a mode. It panics on an empty or duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if strings.TrimSpace(id) == "" {
		panic("registry: empty game id")
	}
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
