package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickwords/internal/games/brickwords"
	"github.com/vovakirdan/brickwords/internal/platform/tui"
	"github.com/vovakirdan/brickwords/internal/registry"
	"github.com/vovakirdan/brickwords/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode, or open the mode menu when no mode is
given.

Controls:
  Left/Right, A/D  - Move the falling piece
  Up, W            - Rotate a two-letter piece
  Down, S          - Drop one row
  Space/P          - Pause (costs a pause token) / resume
  R                - Restart (after game over)
  Esc/B            - Back to menu (when paused or over)
  Q/Ctrl+C         - Quit

Difficulty options only change the fall interval:
  easy   - 800ms per row
  normal - 500ms per row
  hard   - 250ms per row

Examples:
  brickwords play
  brickwords play brickwords
  brickwords play brickwords_escalating --difficulty hard
  brickwords play brickwords --config ./my-brickwords.yaml --words ./words.txt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// terminalSize returns the stdout terminal size, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openStore opens the scores database, or returns nil and logs a warning.
// The game still works without storage.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	preset, err := applyGameFlags()
	if err != nil {
		logger.Error("invalid flags", "err", err)
		os.Exit(1)
	}

	if len(args) == 0 {
		runMenuLoop(preset)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		logger.Error("unknown mode", "mode", gameID)
		logger.Info("run 'brickwords list' to see available modes")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Error("cannot create game", "err", err)
		os.Exit(1)
	}

	store := openStore()
	cfg := runtimeConfig(terminalSize())

	backToMenu, runErr := tui.Run(game, store, cfg)
	if g, ok := game.(*brickwords.Game); ok && g.Err() != nil {
		logger.Error("game could not start", "err", g.Err())
	}

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("error running game", "err", runErr)
		os.Exit(1)
	}
	if backToMenu {
		runMenuLoop(preset)
	}
}
