// Package dictionary loads the set of valid words the game scans for.
package dictionary

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/zyedidia/generic/mapset"
)

// MinLength is the shortest word kept by Parse.
const MinLength = 3

//go:embed words.txt
var defaultWords []byte

// Dictionary is an immutable set of uppercase words.
type Dictionary struct {
	set   mapset.Set[string]
	words []string
}

// New builds a dictionary from words, normalising and filtering them the
// same way Parse does.
func New(words ...string) *Dictionary {
	d := &Dictionary{set: mapset.New[string]()}
	for _, w := range words {
		d.add(w)
	}
	slices.Sort(d.words)
	return d
}

// Normalize trims and uppercases word. It reports false for words that are
// too short or contain anything other than A-Z.
func Normalize(word string) (string, bool) {
	w := strings.ToUpper(strings.TrimSpace(word))
	if len(w) < MinLength {
		return "", false
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return "", false
		}
	}
	return w, true
}

func (d *Dictionary) add(word string) {
	w, ok := Normalize(word)
	if !ok || d.set.Has(w) {
		return
	}
	d.set.Put(w)
	d.words = append(d.words, w)
}

// Parse reads one word per line. Blank lines, lines starting with '#',
// short words and words with non-letters are skipped; duplicates are kept
// once.
func Parse(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{set: mapset.New[string]()}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		d.add(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read: %w", err)
	}
	slices.Sort(d.words)
	return d, nil
}

// Default returns the built-in word list.
func Default() *Dictionary {
	d, err := Parse(bytes.NewReader(defaultWords))
	if err != nil {
		// The embedded list is read from memory and cannot fail.
		panic(err)
	}
	return d
}

// Load reads a word list from path, or returns Default when path is empty.
func Load(path string) (*Dictionary, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, err
	}
	if d.Len() == 0 {
		return nil, fmt.Errorf("dictionary: %s has no words of %d or more letters", path, MinLength)
	}
	return d, nil
}

// Contains reports whether word is in the dictionary. Lookups are exact;
// callers pass uppercase words.
func (d *Dictionary) Contains(word string) bool {
	return d.set.Has(word)
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return d.set.Size()
}

// Words returns all words in alphabetical order.
func (d *Dictionary) Words() []string {
	return slices.Clone(d.words)
}

// Suggest returns up to n words closest to word by edit distance, nearest
// first and alphabetical among ties.
func (d *Dictionary) Suggest(word string, n int) []string {
	if n <= 0 || len(d.words) == 0 {
		return nil
	}
	target := strings.ToUpper(strings.TrimSpace(word))

	type candidate struct {
		word string
		dist int
	}
	candidates := make([]candidate, 0, len(d.words))
	for _, w := range d.words {
		candidates = append(candidates, candidate{w, levenshtein.ComputeDistance(target, w)})
	}
	// d.words is sorted, so a stable sort keeps ties alphabetical.
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return a.dist - b.dist
	})

	out := make([]string, 0, min(n, len(candidates)))
	for _, c := range candidates[:min(n, len(candidates))] {
		out = append(out, c.word)
	}
	return out
}
