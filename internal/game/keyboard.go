package game

import (
	"unicode"

	"termludo/internal/types"
)

// Alphabet lists the letters tracked by a Keyboard.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// KeyStatus is a read-only view of the aggregate letter verdicts.
type KeyStatus interface {
	StatusOf(letter rune) types.Verdict
}

// Merge folds a newly observed verdict into a letter's current status.
// Status only moves upward: Correct and Absent are final, Present can only
// become Correct, and Unknown takes whatever is observed.
func Merge(current, next types.Verdict) types.Verdict {
	switch current {
	case types.Correct, types.Absent:
		return current
	case types.Present:
		if next == types.Correct {
			return types.Correct
		}
		return types.Present
	default:
		return next
	}
}

// Keyboard tracks the aggregate verdict of every letter across a session.
type Keyboard struct {
	status map[rune]types.Verdict
}

// NewKeyboard returns a keyboard with every letter Unknown.
func NewKeyboard() *Keyboard {
	k := &Keyboard{status: make(map[rune]types.Verdict, len(Alphabet))}
	for _, ch := range Alphabet {
		k.status[ch] = types.Unknown
	}
	return k
}

// Apply merges every position of g into the keyboard.
func (k *Keyboard) Apply(g types.Guess) {
	for i, ch := range g.Text {
		if i >= types.WordLength {
			break
		}
		ch = unicode.ToUpper(ch)
		k.status[ch] = Merge(k.status[ch], g.States[i])
	}
}

// StatusOf returns the letter's status, Unknown if it was never guessed.
func (k *Keyboard) StatusOf(letter rune) types.Verdict {
	return k.status[unicode.ToUpper(letter)]
}
