// brickwords is a falling-letter word puzzle for the terminal.
//
// Usage:
//
//	brickwords list                - List game modes
//	brickwords play [mode]         - Play a mode (menu when omitted)
//	brickwords menu                - Start menu to pick a mode interactively
//	brickwords serve               - Start SSH server for remote play
//	brickwords scores [mode]       - Show high scores and best words
//	brickwords words check <w>...  - Check words against the dictionary
//	brickwords sim                 - Run a headless seeded game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.brickwords/scores.db)
//
// BRICKWORDS_DB, BRICKWORDS_CONFIG and BRICKWORDS_WORDS (also read from a
// .env file in the working directory) replace the defaults of --db,
// --config and --words.
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickwords/internal/config"
	"github.com/vovakirdan/brickwords/internal/core"
	"github.com/vovakirdan/brickwords/internal/games/brickwords"
)

// Environment variables that replace flag defaults.
const (
	envDB     = "BRICKWORDS_DB"
	envConfig = "BRICKWORDS_CONFIG"
	envWords  = "BRICKWORDS_WORDS"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	// Shared by play, menu and sim
	flagConfig     string
	flagWords      string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "brickwords",
})

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not read .env", "err", err)
	}

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickwords",
	Short: "Brickwords - spell words with falling letter tiles",
	Long: `Brickwords drops letter tiles onto a board. Steer them so that
dictionary words of three or more letters line up horizontally or
vertically; cleared words score 3^(length-1) and tiles above fall down.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and best words
  words    - Dictionary tools
  sim      - Headless seeded run

Examples:
  brickwords play
  brickwords play brickwords_escalating --difficulty hard
  brickwords serve --ssh :2222
  brickwords words check cat brik`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		applyEnv(cmd, "db", envDB, &flagDBPath)
		applyEnv(cmd, "config", envConfig, &flagConfig)
		applyEnv(cmd, "words", envWords, &flagWords)
	},
}

// applyEnv replaces an unset flag's value with the environment variable.
func applyEnv(cmd *cobra.Command, name, env string, target *string) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		return
	}
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*target = v
	}
}

// addGameFlags registers the flags that pick config, words and difficulty.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom brickwords config YAML")
	cmd.Flags().StringVar(&flagWords, "words", "", "Path to a word list (one word per line)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// applyGameFlags hands the game flags to the brickwords package.
func applyGameFlags() (config.DifficultyPreset, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return "", err
	}
	brickwords.SetConfigPath(flagConfig)
	brickwords.SetWordsPath(flagWords)
	brickwords.SetDifficultyPreset(preset)
	return preset, nil
}

// runtimeConfig builds the platform config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DefaultDBPath(), "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(simCmd)
}
