package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickwords/internal/dictionary"
)

var flagSuggestions int

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Dictionary tools",
	Long: `Inspect the word list the game accepts.

Uses the built-in list unless --words or BRICKWORDS_WORDS points at a file
with one word per line.`,
}

var wordsCheckCmd = &cobra.Command{
	Use:   "check <word>...",
	Short: "Check whether words can be cleared",
	Long: `Reports for each word whether it is in the dictionary. Unknown words
get the closest dictionary words as suggestions.

Exits with status 1 if any word is not accepted.

Examples:
  brickwords words check cat brick
  brickwords words check --words ./words.txt puzle`,
	Args: cobra.MinimumNArgs(1),
	Run:  runWordsCheck,
}

func init() {
	wordsCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Path to a word list (one word per line)")
	wordsCheckCmd.Flags().IntVar(&flagSuggestions, "suggest", 3, "Number of suggestions for unknown words")
	wordsCmd.AddCommand(wordsCheckCmd)
}

func runWordsCheck(_ *cobra.Command, args []string) {
	dict, err := dictionary.Load(flagWords)
	if err != nil {
		logger.Error("cannot load word list", "err", err)
		os.Exit(1)
	}

	failed := false
	for _, arg := range args {
		word, ok := dictionary.Normalize(arg)
		switch {
		case !ok:
			failed = true
			fmt.Printf("%-16s invalid (needs %d+ letters A-Z)\n", arg, dictionary.MinLength)
		case dict.Contains(word):
			fmt.Printf("%-16s ok\n", word)
		default:
			failed = true
			line := fmt.Sprintf("%-16s not in dictionary", word)
			if suggestions := dict.Suggest(word, flagSuggestions); len(suggestions) > 0 {
				line += " (did you mean " + strings.Join(suggestions, ", ") + "?)"
			}
			fmt.Println(line)
		}
	}

	fmt.Printf("\n%d words in dictionary\n", dict.Len())
	if failed {
		os.Exit(1)
	}
}
