package game

import "errors"

// Fatal game errors. All of them end the game; none are retried.
var (
	// ErrInvalidTarget: an explicit target word is not in the word list.
	ErrInvalidTarget = errors.New("target word not in word list")

	// ErrInvalidGuess: guess not in the word list, or a repeat of a prior guess.
	ErrInvalidGuess = errors.New("invalid guess")

	// ErrConstraintViolation: guess contradicts previously revealed knowledge.
	ErrConstraintViolation = errors.New("guess contradicts revealed knowledge")

	// ErrLengthMismatch: guess and target lengths differ during scoring.
	ErrLengthMismatch = errors.New("guess and target lengths differ")
)
