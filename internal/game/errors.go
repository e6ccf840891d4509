package game

import (
	"errors"
	"fmt"

	"termludo/internal/types"
)

var (
	// ErrLengthMismatch means a word is not WordLength letters long.
	ErrLengthMismatch = errors.New("word must be 5 letters")

	// ErrNotInWordList means a guess is not in the accepted list.
	ErrNotInWordList = errors.New("word not recognized")

	// ErrSessionOver is returned for guesses after the game has ended.
	ErrSessionOver = errors.New("game is over")
)

// InvalidGuessError reports a guess that was rejected without consuming an attempt.
// Err is ErrLengthMismatch or ErrNotInWordList.
type InvalidGuessError struct {
	Guess string
	Err   error
}

func (e *InvalidGuessError) Error() string {
	switch {
	case errors.Is(e.Err, ErrLengthMismatch):
		return fmt.Sprintf("'%s' is not %d letters long.", e.Guess, types.WordLength)
	case errors.Is(e.Err, ErrNotInWordList):
		return fmt.Sprintf("'%s' is not a word.", e.Guess)
	default:
		return fmt.Sprintf("'%s' rejected: %v", e.Guess, e.Err)
	}
}

func (e *InvalidGuessError) Unwrap() error {
	return e.Err
}
