// internal/bot/filter.go
//
// Candidate elimination. Given the feedback for one guess, Filter prunes the
// candidate set down to the words still compatible with everything revealed.
//
// Per position i with feedback letter f:
//   - f.InCorrectPlace: candidate must hold f.Char at i.
//   - f.InWord:         candidate must contain f.Char, but not at i
//                       (that exact position is known wrong).
//   - otherwise:        candidate must not contain f.Char anywhere — unless
//                       f.Char scored InWord at some other position of the
//                       same guess. A repeated letter with fewer occurrences
//                       in the target yields a positive and a negative signal
//                       for the same character, and the negative one must not
//                       eliminate words that contain the letter once.
//
// The played guess itself is always removed, so the set shrinks every round.

package bot

import (
	"strings"

	"github.com/wordybot/wordy/internal/game"
)

// Filter returns the candidates still compatible with the feedback for guess.
// Pure; preserves input order; filtering twice with the same arguments yields
// the same set.
func Filter(candidates []string, guess string, fb game.Feedback) []string {
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if w == guess {
			continue
		}
		if compatible(w, fb) {
			out = append(out, w)
		}
	}
	return out
}

// compatible reports whether w violates none of the per-position rules.
func compatible(w string, fb game.Feedback) bool {
	for i, f := range fb.Letters {
		if i >= len(w) {
			return false
		}
		switch {
		case f.InCorrectPlace:
			if w[i] != f.Char {
				return false
			}
		case f.InWord:
			if strings.IndexByte(w, f.Char) < 0 || w[i] == f.Char {
				return false
			}
		default:
			if strings.IndexByte(w, f.Char) >= 0 && !positiveElsewhere(fb.Letters, i, f.Char) {
				return false
			}
		}
	}
	return true
}

// positiveElsewhere reports whether ch scored InWord at a position other than skip.
func positiveElsewhere(letters []game.Letter, skip int, ch byte) bool {
	for j, o := range letters {
		if j != skip && o.Char == ch && o.InWord {
			return true
		}
	}
	return false
}
