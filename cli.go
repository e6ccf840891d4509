package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"termludo/internal/game"
	"termludo/internal/render"
	"termludo/internal/words"
)

// newRootCmd builds the termludo command tree. With no subcommand it runs
// the interactive menu.
func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "termludo",
		Short: "Guess the five-letter word in the terminal",
		Long: `termludo is a terminal Wordle clone.

Guess the secret five-letter word. After every guess each letter is marked
green (right spot), yellow (in the word, wrong spot) or grey (not in the word).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, configPath, func(app *App) error {
				return app.Run()
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default .termludo.yaml in . or $HOME)")
	flags.String("answers", "", "file with candidate secret words, one per line")
	flags.String("allowed", "", "file with accepted guesses, one per line")
	flags.Int("attempts", game.DefaultMaxAttempts, "number of guesses per game")
	flags.Int64("seed", 0, "random seed for word selection (0 picks one)")
	flags.String("log-file", "", "write JSON logs to this file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("no-color", false, "disable coloured output")

	cmd.AddCommand(
		newPlayCmd(&configPath),
		newTutorialCmd(&configPath),
		newWordsCmd(&configPath),
	)

	return cmd
}

func newPlayCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a single game and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configPath, func(app *App) error {
				if err := app.playGame(); err != nil && !errors.Is(err, io.EOF) {
					return err
				}
				return nil
			})
		},
	}
}

func newTutorialCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tutorial",
		Short: "Show how to play",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configPath, func(app *App) error {
				app.showTutorial()
				return nil
			})
		},
	}
}

func newWordsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "Show word list statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configPath, func(app *App) error {
				answers, allowed, skipped := app.Words.Stats()
				fmt.Fprintf(app.Out, "Answers:  %d\n", answers)
				fmt.Fprintf(app.Out, "Accepted: %d\n", allowed)
				fmt.Fprintf(app.Out, "Skipped:  %d\n", skipped)
				return nil
			})
		},
	}
}

// withApp resolves configuration, sets up logging and runs fn with a ready App.
func withApp(cmd *cobra.Command, configPath string, fn func(*App) error) error {
	cfg, err := LoadConfig(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	// Failures are recorded here, while the log file is still open.
	app, err := newApp(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		logger.Error().Err(err).Msg("Startup failed")
		return err
	}
	if err := fn(app); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		return err
	}
	return nil
}

// newApp loads the dictionary and prepares the renderer for out.
func newApp(cfg *Config, in io.Reader, out, errOut io.Writer) (*App, error) {
	dict, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
	if err != nil {
		return nil, fmt.Errorf("load word lists: %w", err)
	}

	answers, allowed, skipped := dict.Stats()
	logInfo("Loaded %d answers and %d accepted words", answers, allowed)
	if skipped > 0 {
		logWarn("Skipped %d malformed word list entries", skipped)
	}

	tty := isTerminal(out)
	renderer := render.New(out,
		render.WithColor(tty && !cfg.NoColor),
		render.WithClear(tty),
	)

	return &App{
		Config:    cfg,
		Words:     dict,
		Renderer:  renderer,
		In:        bufio.NewReader(in),
		Out:       out,
		ErrOut:    errOut,
		Rand:      newRand(cfg.Seed),
		StartTime: time.Now(),
	}, nil
}
