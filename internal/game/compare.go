package game

import (
	"fmt"

	"github.com/samber/lo"

	"termludo/internal/types"
)

// Compare scores guess against secret and returns one verdict per position.
// Both words are expected to be uppercase already.
//
// Exact matches are claimed in a first pass so that a repeated letter never
// spends the secret's count on a Present tile that a later Correct tile needs.
// The remaining positions are then resolved left to right against what is
// left of each letter's count.
func Compare(guess, secret string) ([types.WordLength]types.Verdict, error) {
	var states [types.WordLength]types.Verdict

	if len(guess) != types.WordLength {
		return states, fmt.Errorf("guess %q has %d letters: %w", guess, len(guess), ErrLengthMismatch)
	}
	if len(secret) != types.WordLength {
		return states, fmt.Errorf("secret has %d letters: %w", len(secret), ErrLengthMismatch)
	}

	counts := lo.CountValues([]byte(secret))

	for i := range types.WordLength {
		if guess[i] == secret[i] {
			states[i] = types.Correct
			counts[guess[i]]--
		}
	}

	for i := range types.WordLength {
		if states[i] == types.Correct {
			continue
		}
		if counts[guess[i]] > 0 {
			states[i] = types.Present
			counts[guess[i]]--
		} else {
			states[i] = types.Absent
		}
	}

	return states, nil
}
