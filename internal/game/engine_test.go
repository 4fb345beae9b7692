package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordybot/wordy/internal/bot"
	"github.com/wordybot/wordy/internal/game"
	"github.com/wordybot/wordy/internal/words"
)

// firstBot deterministically plays the first remaining candidate and filters
// like the real bot. It records a snapshot of its candidate set after every
// round so tests can assert on the elimination sequence.
type firstBot struct {
	candidates []string
	history    [][]string
}

func newFirstBot(list *words.List) *firstBot {
	return &firstBot{candidates: list.Words()}
}

func (b *firstBot) MakeGuess() (string, error) {
	if len(b.candidates) == 0 {
		return "", bot.ErrNoCandidates
	}
	return b.candidates[0], nil
}

func (b *firstBot) RecordResult(guess string, fb game.Feedback) {
	b.candidates = bot.Filter(b.candidates, guess, fb)
	b.history = append(b.history, append([]string(nil), b.candidates...))
}

// scriptedBot plays a fixed sequence of guesses and ignores feedback.
type scriptedBot struct{ queue []string }

func (b *scriptedBot) MakeGuess() (string, error) {
	g := b.queue[0]
	b.queue = b.queue[1:]
	return g, nil
}

func (b *scriptedBot) RecordResult(string, game.Feedback) {}

func mustList(t *testing.T, ws []string) *words.List {
	t.Helper()
	l, err := words.New(ws)
	require.NoError(t, err)
	return l
}

func fixtureList(t *testing.T) *words.List {
	return mustList(t, []string{"DOGGY", "DRIVE", "DADDY", "FIELD", "STATE"})
}

func TestPlayWinsFirstGuess(t *testing.T) {
	list := fixtureList(t)
	eng, err := game.New(list, game.Config{Target: "DOGGY"})
	require.NoError(t, err)

	res := eng.Play(newFirstBot(list))
	assert.Equal(t, game.StatusWon, res.Status)
	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, []string{"DOGGY"}, res.Guesses)
}

func TestPlayAllAbsentFeedbackIsolatesTarget(t *testing.T) {
	list := fixtureList(t)
	eng, err := game.New(list, game.Config{Target: "STATE"})
	require.NoError(t, err)

	b := newFirstBot(list)
	res := eng.Play(b)

	// DOGGY shares no letter with STATE; every other word carries a D,
	// so one round of feedback leaves STATE as the sole candidate.
	require.NotEmpty(t, b.history)
	assert.Equal(t, []string{"STATE"}, b.history[0])
	assert.Equal(t, game.StatusWon, res.Status)
	assert.Equal(t, []string{"DOGGY", "STATE"}, res.Guesses)
}

func TestNewRejectsTargetOutsideList(t *testing.T) {
	_, err := game.New(fixtureList(t), game.Config{Target: "QUERY"})
	require.ErrorIs(t, err, game.ErrInvalidTarget)
}

func TestPlayAbortsOnRepeatGuess(t *testing.T) {
	eng, err := game.New(fixtureList(t), game.Config{Target: "STATE"})
	require.NoError(t, err)

	res := eng.Play(&scriptedBot{queue: []string{"DOGGY", "DOGGY"}})
	assert.Equal(t, game.StatusAborted, res.Status)
	assert.ErrorIs(t, res.Err, game.ErrInvalidGuess)
	assert.Equal(t, 1, res.Rounds)
}

func TestPlayAbortsOnGuessOutsideList(t *testing.T) {
	eng, err := game.New(fixtureList(t), game.Config{Target: "STATE"})
	require.NoError(t, err)

	res := eng.Play(&scriptedBot{queue: []string{"OTHER"}})
	assert.Equal(t, game.StatusAborted, res.Status)
	assert.ErrorIs(t, res.Err, game.ErrInvalidGuess)
}

func TestPlayAbortsOnConstraintViolation(t *testing.T) {
	list := mustList(t, []string{"DADDY", "FIELD", "DOGGY", "DRIVE", "STATE"})
	eng, err := game.New(list, game.Config{Target: "DOGGY"})
	require.NoError(t, err)

	// DADDY reveals D at position 0; FIELD contradicts it.
	res := eng.Play(&scriptedBot{queue: []string{"DADDY", "FIELD"}})
	assert.Equal(t, game.StatusAborted, res.Status)
	assert.ErrorIs(t, res.Err, game.ErrConstraintViolation)
	assert.Equal(t, []string{"DADDY"}, res.Guesses)
}

func TestPlayExhaustsBudget(t *testing.T) {
	list := mustList(t, []string{"DRIVE", "STATE"})
	eng, err := game.New(list, game.Config{Target: "STATE", MaxGuesses: 1})
	require.NoError(t, err)

	res := eng.Play(&scriptedBot{queue: []string{"DRIVE"}})
	assert.Equal(t, game.StatusExhausted, res.Status)
	assert.Equal(t, 1, res.Rounds)
}

func TestPlaySurfacesEmptyCandidateSet(t *testing.T) {
	list := fixtureList(t)
	eng, err := game.New(list, game.Config{Target: "STATE"})
	require.NoError(t, err)

	res := eng.Play(&firstBot{})
	assert.Equal(t, game.StatusAborted, res.Status)
	assert.ErrorIs(t, res.Err, bot.ErrNoCandidates)
}

func TestNewAppliesDefaults(t *testing.T) {
	list := fixtureList(t)
	eng, err := game.New(list, game.Config{})
	require.NoError(t, err)
	assert.True(t, list.Contains(eng.Target()), "random target must come from the list")
}
