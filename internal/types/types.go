package types

// WordLength is the number of letters in every secret and guess.
const WordLength = 5

// Verdict describes how a letter relates to the secret word.
// The numeric order is the merge order: Correct > Present > Absent > Unknown.
type Verdict int

const (
	Unknown Verdict = iota
	Absent
	Present
	Correct
)

func (v Verdict) String() string {
	switch v {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// Outcome is the lifecycle state of a game session.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// Terminal reports whether no further guesses are accepted.
func (o Outcome) Terminal() bool {
	return o != InProgress
}

// Guess is a submitted word together with one verdict per letter.
type Guess struct {
	Text   string
	States [WordLength]Verdict
}

// Solved reports whether every letter of the guess is Correct.
func (g Guess) Solved() bool {
	for _, s := range g.States {
		if s != Correct {
			return false
		}
	}
	return true
}
