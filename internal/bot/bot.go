// internal/bot/bot.go
//
// The random bot: owns a candidate set seeded from the word list, guesses
// uniformly at random among the remaining candidates, and shrinks the set
// with Filter after every round of feedback.

package bot

import (
	"errors"
	mrand "math/rand"
	"time"

	"github.com/wordybot/wordy/internal/game"
	"github.com/wordybot/wordy/internal/words"
)

// ErrNoCandidates is returned when the candidate set has emptied out.
// With consistent feedback this is unreachable; hitting it signals a
// filtering bug and must be surfaced, not swallowed.
var ErrNoCandidates = errors.New("bot: candidate set is empty")

// Random guesses uniformly at random among its remaining candidates.
// It implements game.Player.
type Random struct {
	candidates []string
	rng        *mrand.Rand
}

// NewRandom seeds a bot from the word list. Pass a seeded rng for
// reproducible guess sequences; nil uses the wall clock.
func NewRandom(list *words.List, rng *mrand.Rand) *Random {
	if rng == nil {
		rng = mrand.New(mrand.NewSource(time.Now().UnixNano()))
	}
	return &Random{candidates: list.Words(), rng: rng}
}

// MakeGuess picks a random remaining candidate.
func (b *Random) MakeGuess() (string, error) {
	if len(b.candidates) == 0 {
		return "", ErrNoCandidates
	}
	return b.candidates[b.rng.Intn(len(b.candidates))], nil
}

// RecordResult replaces the candidate set with the filtered remainder.
func (b *Random) RecordResult(guess string, fb game.Feedback) {
	b.candidates = Filter(b.candidates, guess, fb)
}

// Remaining returns the current candidate count.
func (b *Random) Remaining() int { return len(b.candidates) }

// Candidates returns a copy of the remaining candidates, in order.
func (b *Random) Candidates() []string {
	return append([]string(nil), b.candidates...)
}
