package game

import (
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"termludo/internal/types"
)

const (
	// DefaultMaxAttempts is the attempt budget used when none is configured.
	DefaultMaxAttempts = 6

	// MaxAttemptsLimit caps the budget so the board fits on a screen.
	MaxAttemptsLimit = 26
)

// WordSource supplies secrets and decides which guesses are accepted.
type WordSource interface {
	RandomAnswer(r *rand.Rand) string
	IsAccepted(word string) bool
}

// Session is a single game: one secret, a bounded guess history and the
// keyboard state derived from it.
type Session struct {
	words       WordSource
	rng         *rand.Rand
	maxAttempts int

	id        string
	secret    string
	guesses   []types.Guess
	remaining int
	outcome   types.Outcome
	keyboard  *Keyboard
	startedAt time.Time
}

// NewSession creates a session and starts it immediately. A budget below 1
// falls back to DefaultMaxAttempts; one above MaxAttemptsLimit is clamped.
func NewSession(words WordSource, rng *rand.Rand, maxAttempts int) *Session {
	switch {
	case maxAttempts < 1:
		maxAttempts = DefaultMaxAttempts
	case maxAttempts > MaxAttemptsLimit:
		maxAttempts = MaxAttemptsLimit
	}
	s := &Session{
		words:       words,
		rng:         rng,
		maxAttempts: maxAttempts,
	}
	s.Start()
	return s
}

// Start draws a new secret and resets all per-game state.
func (s *Session) Start() {
	s.id = uuid.NewString()
	s.secret = strings.ToUpper(s.words.RandomAnswer(s.rng))
	s.guesses = make([]types.Guess, 0, s.maxAttempts)
	s.remaining = s.maxAttempts
	s.outcome = types.InProgress
	s.keyboard = NewKeyboard()
	s.startedAt = time.Now()
}

// SubmitGuess validates raw input and, if accepted, scores it and advances
// the session. Rejected input returns an *InvalidGuessError and leaves the
// session untouched.
func (s *Session) SubmitGuess(raw string) (types.Guess, error) {
	if s.outcome.Terminal() {
		return types.Guess{}, ErrSessionOver
	}

	word := NormalizeGuess(raw)
	if len(word) != types.WordLength {
		return types.Guess{}, &InvalidGuessError{Guess: word, Err: ErrLengthMismatch}
	}
	if !s.words.IsAccepted(word) {
		return types.Guess{}, &InvalidGuessError{Guess: word, Err: ErrNotInWordList}
	}

	states, err := Compare(word, s.secret)
	if err != nil {
		return types.Guess{}, err
	}

	g := types.Guess{Text: word, States: states}
	s.guesses = append(s.guesses, g)
	s.keyboard.Apply(g)
	s.remaining--

	switch {
	case word == s.secret:
		s.outcome = types.Won
	case s.remaining == 0:
		s.outcome = types.Lost
	}

	return g, nil
}

// NormalizeGuess trims and uppercases a guess for comparison.
func NormalizeGuess(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Guesses returns a copy of the accepted guesses in order.
func (s *Session) Guesses() []types.Guess { return slices.Clone(s.guesses) }

// Remaining is the number of attempts left.
func (s *Session) Remaining() int { return s.remaining }

// MaxAttempts is the attempt budget the session started with.
func (s *Session) MaxAttempts() int { return s.maxAttempts }

// Attempts is the number of accepted guesses so far.
func (s *Session) Attempts() int { return len(s.guesses) }

// Outcome reports whether the game is still running, won or lost.
func (s *Session) Outcome() types.Outcome { return s.outcome }

// Keyboard exposes the aggregate letter states for rendering.
func (s *Session) Keyboard() KeyStatus { return s.keyboard }

// Elapsed is the time since Start.
func (s *Session) Elapsed() time.Duration { return time.Since(s.startedAt) }

// Secret reveals the word once the session has ended.
func (s *Session) Secret() (string, bool) {
	if !s.outcome.Terminal() {
		return "", false
	}
	return s.secret, true
}
