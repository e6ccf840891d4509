package main

import (
	"fmt"

	"termludo/internal/game"
)

// newGameSession starts a game with a freshly drawn secret.
func (app *App) newGameSession() *game.Session {
	s := game.NewSession(app.Words, app.Rand, app.Config.MaxAttempts)
	logger.Info().
		Str("session", s.ID()).
		Int("attempts", s.MaxAttempts()).
		Msg("New game created")
	return s
}

// drawBoard redraws the in-game screen for s.
func (app *App) drawBoard(s *game.Session) {
	app.Renderer.Clear()
	fmt.Fprint(app.Out, app.Renderer.Screen(s.Guesses(), s.MaxAttempts(), s.Keyboard()))
}
