// internal/game/score.go
//
// Pure scoring of a guess against the target word.
//
// Policy for repeated letters: InWord is set whenever the guessed character
// occurs anywhere in the target, for every occurrence in the guess. A guess
// holding a letter twice against a target holding it once therefore yields
// two positive signals. The candidate filter and the knowledge absent-set
// update both carry the matching duplicate-letter exception, so downstream
// logic stays consistent with this policy.

package game

import (
	"fmt"
	"strings"
)

// Score evaluates guess against target, producing per-position feedback.
// Deterministic, no side effects. Fails only on a length mismatch.
func Score(guess, target string) (Feedback, error) {
	if len(guess) != len(target) {
		return Feedback{}, fmt.Errorf("%w: guess %q, target %q", ErrLengthMismatch, guess, target)
	}
	fb := Feedback{Correct: true, Letters: make([]Letter, len(guess))}
	for i := 0; i < len(guess); i++ {
		l := Letter{Char: guess[i]}
		if guess[i] == target[i] {
			l.InCorrectPlace = true
		} else {
			fb.Correct = false
		}
		if strings.IndexByte(target, guess[i]) >= 0 {
			l.InWord = true
		}
		fb.Letters[i] = l
	}
	return fb, nil
}

// inWordElsewhere reports whether ch was marked InWord at a position other
// than skip. Used for the duplicate-letter exception: one occurrence of a
// repeated letter may score negative while another scores positive, and the
// negative signal must not blanket-eliminate the letter.
func inWordElsewhere(letters []Letter, skip int, ch byte) bool {
	for j, o := range letters {
		if j != skip && o.Char == ch && o.InWord {
			return true
		}
	}
	return false
}
