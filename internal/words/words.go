// internal/words/words.go
//
// Word list management for the simulator.
//
// Responsibilities:
//   - Load word lists from plain-text files, a SQLite database (sqlite.go),
//     or an embedded default (ensures the binary runs with no configuration).
//   - Normalize every entry: trim, uppercase, keep only 5-letter A–Z words.
//   - Maintain a set for quick membership lookups alongside the ordered list.
//
// The engine and the bot must be seeded from the same List for a game to be
// well-formed; List is therefore an explicit value handed to both, not a
// package-level singleton.
//
// Constraints:
//   • Words are exactly WordLen alphabetic letters (A–Z).
//   • Lists preserve insertion order (stable iteration for tests).
//   • Duplicate entries are dropped on ingestion.

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"math/big"
	mrand "math/rand"
	"os"
	"strings"
)

// WordLen is the fixed word length the whole game is built around.
const WordLen = 5

//go:embed default_words.txt
var embeddedWords string

// List is a normalized, ordered word list with set-based lookups.
type List struct {
	words []string            // insertion order, uppercase
	set   map[string]struct{} // membership index
}

// New builds a List from raw entries, normalizing and dropping invalid ones.
// Returns an error if nothing valid survives.
func New(raw []string) (*List, error) {
	l := &List{set: make(map[string]struct{}, len(raw))}
	for _, e := range raw {
		w := Normalize(e)
		if !valid(w) {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.words = append(l.words, w)
		l.set[w] = struct{}{}
	}
	if len(l.words) == 0 {
		return nil, errors.New("words: list is empty after normalization")
	}
	return l, nil
}

// Load reads one word per line from a plain-text file.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		raw = append(raw, s)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return New(raw)
}

// Default returns the embedded fallback list.
func Default() *List {
	l, err := New(strings.Split(embeddedWords, "\n"))
	if err != nil {
		// The embedded list is compiled in; an empty result is a build defect.
		panic(err)
	}
	return l
}

// Normalize trims whitespace and uppercases a raw entry.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// valid reports whether w is exactly WordLen uppercase ASCII letters.
func valid(w string) bool {
	if len(w) != WordLen {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}

// Contains reports whether w (any casing) is a member of the list.
func (l *List) Contains(w string) bool {
	_, ok := l.set[Normalize(w)]
	return ok
}

// Words returns a copy of the list in insertion order.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Len returns the number of words in the list.
func (l *List) Len() int { return len(l.words) }

// Random returns a uniformly random member. With a nil rng it falls back to
// crypto/rand so callers without a seed still get an unpredictable pick.
func (l *List) Random(rng *mrand.Rand) string {
	if rng != nil {
		return l.words[rng.Intn(len(l.words))]
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	return l.words[nBig.Int64()]
}
