// internal/game/engine.go
//
// Round orchestration for a single game.
// Responsibilities:
//   - Resolve the target word (explicit, or random from the list).
//   - Ask the player for guesses and validate each one against the word list,
//     previous guesses, and accumulated Knowledge.
//   - Score valid guesses and deliver feedback to the player.
//   - Track state transitions: playing → won/exhausted/aborted.
//
// Validation failures are fatal: the game transitions to StatusAborted and
// the error is carried on the Result. Nothing is retried.

package game

import (
	"fmt"
	mrand "math/rand"
	"strings"

	"github.com/wordybot/wordy/internal/words"
)

// DefaultMaxGuesses is the guess budget used when Config leaves it unset.
// The engine plays exactly this many rounds before giving up.
const DefaultMaxGuesses = 6

// Player is the contract a bot must satisfy to play a game.
// Any conforming implementation is a valid play partner.
type Player interface {
	// MakeGuess returns the player's next guess.
	MakeGuess() (string, error)

	// RecordResult delivers the scored feedback for a guess the player made.
	RecordResult(guess string, fb Feedback)
}

// Reporter receives human-readable round output. Implementations live in
// internal/display; no decision logic ever reads from a Reporter.
type Reporter interface {
	Round(round int, guess string, fb Feedback)
	Outcome(res Result)
}

// Config carries per-game settings.
type Config struct {
	Target     string      // explicit target; empty means pick randomly
	MaxGuesses int         // guess budget; 0 means DefaultMaxGuesses
	Rand       *mrand.Rand // randomness for target selection; nil falls back to crypto/rand
	Reporter   Reporter    // optional; nil silences round output
}

// Engine runs one game to a terminal state.
type Engine struct {
	list       *words.List
	target     string
	maxGuesses int
	know       *Knowledge
	prev       []string
	reporter   Reporter
}

// New constructs an Engine for a single game.
// An explicit target that is not a list member fails with ErrInvalidTarget
// before any round is played.
func New(list *words.List, cfg Config) (*Engine, error) {
	target := words.Normalize(cfg.Target)
	if target != "" && !list.Contains(target) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	if target == "" {
		target = list.Random(cfg.Rand)
	}
	max := cfg.MaxGuesses
	if max <= 0 {
		max = DefaultMaxGuesses
	}
	return &Engine{
		list:       list,
		target:     target,
		maxGuesses: max,
		know:       NewKnowledge(),
		reporter:   cfg.Reporter,
	}, nil
}

// Target exposes the resolved hidden word (useful for logging and tests).
func (e *Engine) Target() string { return e.target }

// Play runs rounds against p until a terminal state is reached.
func (e *Engine) Play(p Player) Result {
	res := Result{Target: e.target}
	for round := 1; round <= e.maxGuesses; round++ {
		guess, err := p.MakeGuess()
		if err != nil {
			return e.abort(res, fmt.Errorf("player: %w", err))
		}
		guess = words.Normalize(guess)

		if err := e.validate(guess); err != nil {
			return e.abort(res, err)
		}
		e.prev = append(e.prev, guess)
		res.Guesses = append(res.Guesses, guess)
		res.Rounds = round

		fb, err := Score(guess, e.target)
		if err != nil {
			// Unreachable: list membership pins the guess length.
			return e.abort(res, err)
		}
		e.know.Absorb(fb)
		p.RecordResult(guess, fb)
		if e.reporter != nil {
			e.reporter.Round(round, guess, fb)
		}

		if fb.Correct {
			return e.finish(res, StatusWon)
		}
	}
	return e.finish(res, StatusExhausted)
}

// validate applies the round entry rules: list membership, no repeats, and
// consistency with everything feedback has already revealed.
func (e *Engine) validate(guess string) error {
	if !e.list.Contains(guess) {
		return fmt.Errorf("%w: %q not in word list", ErrInvalidGuess, guess)
	}
	for _, prev := range e.prev {
		if guess == prev {
			return fmt.Errorf("%w: %q already guessed", ErrInvalidGuess, guess)
		}
	}
	return e.know.Check(guess)
}

func (e *Engine) abort(res Result, err error) Result {
	res.Status = StatusAborted
	res.Err = err
	return e.report(res)
}

func (e *Engine) finish(res Result, st Status) Result {
	res.Status = st
	return e.report(res)
}

func (e *Engine) report(res Result) Result {
	if e.reporter != nil {
		e.reporter.Outcome(res)
	}
	return res
}

// Previous returns the guesses played so far, oldest first.
func (e *Engine) Previous() []string {
	return append([]string(nil), e.prev...)
}

// Knowledge returns the constraints revealed so far.
func (e *Engine) Knowledge() *Knowledge { return e.know }

// String renders a compact engine description for logs.
func (e *Engine) String() string {
	return fmt.Sprintf("game{target:%s guesses:%s}", e.target, strings.Join(e.prev, ","))
}
