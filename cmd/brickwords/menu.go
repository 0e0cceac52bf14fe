package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickwords/internal/config"
	"github.com/vovakirdan/brickwords/internal/games/brickwords"
	"github.com/vovakirdan/brickwords/internal/platform/tui"
	"github.com/vovakirdan/brickwords/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the mode picker menu",
	Long: `Start Brickwords in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change difficulty and
Enter to start. After a game you can return to the menu with Esc.

Controls:
  Up/Down/j/k     - Choose mode
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Tab             - High scores and best words
  Q               - Quit

Examples:
  brickwords menu
  brickwords menu --fps 30
  brickwords menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	preset, err := applyGameFlags()
	if err != nil {
		logger.Error("invalid flags", "err", err)
		os.Exit(1)
	}
	runMenuLoop(preset)
}

// runMenuLoop shows the menu until the user quits, running the picked
// modes and the scoreboard in between.
func runMenuLoop(preset config.DifficultyPreset) {
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig(terminalSize())

	for {
		result, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			logger.Error("menu failed", "err", err)
			return
		}
		cfg = result.Config
		preset = result.Difficulty
		brickwords.SetDifficultyPreset(preset)

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "err", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create game", "err", err)
			continue
		}

		// Each game gets a fresh seed unless one was given on the command line.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg)
		if err != nil {
			logger.Error("error running game", "err", err)
		}
		if !backToMenu {
			return
		}
	}
}
