package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Run waits for Enter once, then shows the main menu until the player exits
// or input ends.
func (app *App) Run() error {
	logInfo("Menu started")
	if err := app.pause(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	for {
		app.Renderer.Clear()
		fmt.Fprint(app.Out, app.Renderer.Menu(Version))

		choice, err := app.readChoice()
		if errors.Is(err, io.EOF) {
			logInfo("Input closed, exiting after %s", formatDuration(time.Since(app.StartTime)))
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case MenuPlay:
			if err := app.playGame(); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		case MenuTutorial:
			app.showTutorial()
		case MenuExit:
			logInfo("Player exited after %s", formatDuration(time.Since(app.StartTime)))
			return nil
		}

		if err := app.pause(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// readChoice prompts until a valid menu number is entered.
func (app *App) readChoice() (int, error) {
	for {
		line, err := app.prompt(PromptChoice)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(app.ErrOut, app.Renderer.Error(ErrorNotANumber))
			continue
		}
		if !lo.Contains([]int{MenuPlay, MenuTutorial, MenuExit}, n) {
			fmt.Fprintln(app.ErrOut, app.Renderer.Error(ErrorInvalidChoice))
			continue
		}
		return n, nil
	}
}

// showTutorial prints the how-to-play screen.
func (app *App) showTutorial() {
	app.Renderer.Clear()
	fmt.Fprint(app.Out, app.Renderer.Tutorial(app.Config.MaxAttempts))
}

// prompt prints msg and reads one line of input.
func (app *App) prompt(msg string) (string, error) {
	fmt.Fprint(app.Out, msg)
	return app.readLine()
}

// pause waits for the player to press Enter.
func (app *App) pause() error {
	_, err := app.prompt(PromptContinue)
	return err
}

// readLine reads one line without its terminator. A final line that is not
// newline-terminated is still returned; io.EOF is reported only once no
// input is left.
func (app *App) readLine() (string, error) {
	line, err := app.In.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
