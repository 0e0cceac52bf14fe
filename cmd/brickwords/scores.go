package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickwords/internal/games/brickwords"
	"github.com/vovakirdan/brickwords/internal/registry"
	"github.com/vovakirdan/brickwords/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and best words for a mode",
	Long: `Display the top scores, the best cleared words and overall stats for
a mode (default: brickwords).

Examples:
  brickwords scores
  brickwords scores brickwords_escalating --limit 20
  brickwords scores brickwords --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores and words to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and words of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := brickwords.ModeClassic
	if len(args) > 0 {
		gameID = args[0]
	}

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
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("cannot open scores database", "err", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			logger.Error("cannot clear scores", "err", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores and words for %s.\n", title)
		return
	}

	if err := printScores(store, gameID, title, flagScoresLimit); err != nil {
		logger.Error("cannot read scores", "err", err)
		os.Exit(1)
	}
}

// printScores writes the scores, words and stats tables to stdout.
func printScores(store *storage.Store, gameID, title string, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'brickwords play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	words, err := store.TopWords(gameID, limit)
	if err != nil {
		return err
	}
	if len(words) > 0 {
		fmt.Println()
		fmt.Println("Best Words")
		fmt.Println()
		fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "Rank", "Word", "Score", "Times")
		fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "----", "----", "-----", "-----")
		for i, w := range words {
			fmt.Printf("  %-4d  %-12s  %-8d  %d\n", i+1, w.Word, w.BestScore, w.Times)
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.0f  Words cleared: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.WordsCleared)
	if stats.LongestWord != "" {
		fmt.Printf("Longest word: %s\n", stats.LongestWord)
	}
	return nil
}
