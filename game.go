package main

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"termludo/internal/game"
	"termludo/internal/types"
)

// playGame runs one session until it is won or lost.
func (app *App) playGame() error {
	s := app.newGameSession()

	for !s.Outcome().Terminal() {
		app.drawBoard(s)

		input, err := app.prompt(PromptGuess)
		if err != nil {
			return err
		}

		if err := app.processGuess(s, input); err != nil {
			var invalid *game.InvalidGuessError
			if !errors.As(err, &invalid) {
				return err
			}
			fmt.Fprintln(app.ErrOut, app.Renderer.Error(invalid.Error()+ErrorTryAgain))
			if err := app.pause(); err != nil {
				return err
			}
		}
	}

	app.drawBoard(s)
	app.announceResult(s)
	return nil
}

// processGuess submits input to the session and logs the result. Rejected
// guesses are returned as *game.InvalidGuessError; anything else is an
// internal error.
func (app *App) processGuess(s *game.Session, input string) error {
	guess := game.NormalizeGuess(input)
	logInfo("Session %s guessed: %s (attempt %d/%d)", s.ID(), guess, s.Attempts()+1, s.MaxAttempts())

	g, err := s.SubmitGuess(input)
	if err != nil {
		var invalid *game.InvalidGuessError
		if errors.As(err, &invalid) {
			logWarn("Session %s submitted invalid guess: %v", s.ID(), err)
			return err
		}
		return fmt.Errorf("session %s: %w", s.ID(), err)
	}

	logger.Debug().
		Str("session", s.ID()).
		Str("guess", g.Text).
		Strs("states", lo.Map(g.States[:], func(v types.Verdict, _ int) string { return v.String() })).
		Int("remaining", s.Remaining()).
		Msg("Guess scored")

	switch s.Outcome() {
	case types.Won:
		logInfo("Player won in %d/%d attempts (session %s)", s.Attempts(), s.MaxAttempts(), s.ID())
	case types.Lost:
		secret, _ := s.Secret()
		logInfo("Player lost. Target word was: %s (session %s)", secret, s.ID())
	}
	return nil
}

// announceResult prints the win or loss message under the final board.
func (app *App) announceResult(s *game.Session) {
	switch s.Outcome() {
	case types.Won:
		fmt.Fprintln(app.Out, app.Renderer.Success(MessageWon))
		fmt.Fprintln(app.Out, app.Renderer.Info(fmt.Sprintf("Solved in %d/%d guesses (%s).",
			s.Attempts(), s.MaxAttempts(), formatDuration(s.Elapsed()))))
	case types.Lost:
		secret, _ := s.Secret()
		fmt.Fprintln(app.Out, app.Renderer.Error(MessageLost))
		fmt.Fprintf(app.Out, "The word was: %s\n", secret)
	}
}
