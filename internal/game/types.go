// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Letter: per-position verdict for one guessed character.
//   - Feedback: the full scored result of a single guess.
//   - Status: coarse terminal/non-terminal game state.
//   - Result: summary of a finished game.

package game

// Letter is the scored outcome for a single position of a guess.
// Values are fixed at scoring time and never mutated afterwards.
// InCorrectPlace implies InWord.
type Letter struct {
	Char           byte // uppercase A–Z
	InWord         bool // character occurs somewhere in the target
	InCorrectPlace bool // character matches the target at this position
}

// Feedback is the result of scoring one guess against the target.
// Letters holds one entry per guess position, in order.
type Feedback struct {
	Correct bool
	Letters []Letter
}

// Status represents the coarse state of a game.
type Status string

const (
	StatusPlaying   Status = "playing"
	StatusWon       Status = "won"
	StatusExhausted Status = "exhausted" // guess budget spent without a win
	StatusAborted   Status = "aborted"   // fatal validation failure
)

// Result summarizes a finished game.
type Result struct {
	Target  string   // the hidden word
	Guesses []string // guesses played, in order
	Rounds  int      // rounds actually played
	Status  Status
	Err     error // set when Status == StatusAborted
}
