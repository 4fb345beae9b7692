// internal/game/knowledge.go
//
// Knowledge is the referee's cumulative record of what feedback has revealed:
// characters pinned to positions and characters known absent from the target.
// It only ever grows within a game, and is used solely to validate that the
// bot is not contradicting information it has already been given.

package game

import (
	"fmt"

	"github.com/wordybot/wordy/internal/words"
)

// Knowledge holds the constraints revealed so far in one game.
type Knowledge struct {
	Positions [words.WordLen]byte // revealed correct character per position; 0 = unknown
	Absent    map[byte]struct{}   // characters known not to occur in the target
}

// NewKnowledge returns an empty Knowledge.
func NewKnowledge() *Knowledge {
	return &Knowledge{Absent: make(map[byte]struct{})}
}

// Check validates a guess against the accumulated constraints.
// Returns ErrConstraintViolation (wrapped) on the first contradiction.
func (k *Knowledge) Check(guess string) error {
	for i := 0; i < len(guess) && i < words.WordLen; i++ {
		c := guess[i]
		if _, bad := k.Absent[c]; bad {
			return fmt.Errorf("%w: %q reuses letter %c known to be absent", ErrConstraintViolation, guess, c)
		}
		if want := k.Positions[i]; want != 0 && want != c {
			return fmt.Errorf("%w: position %d revealed as %c, guess %q has %c", ErrConstraintViolation, i, want, guess, c)
		}
	}
	return nil
}

// Absorb folds one round of feedback into the constraints. A character scored
// not-InWord is only added to the absent set when no other occurrence of it
// in the same guess scored InWord (duplicate-letter exception), so validation
// of future guesses is never corrupted.
func (k *Knowledge) Absorb(fb Feedback) {
	for i, l := range fb.Letters {
		if i < words.WordLen && l.InCorrectPlace {
			k.Positions[i] = l.Char
		}
		if !l.InWord && !inWordElsewhere(fb.Letters, i, l.Char) {
			k.Absent[l.Char] = struct{}{}
		}
	}
}
