package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// logger stays silent unless a log file is configured, so that log lines
// never land on the game screen.
var logger = zerolog.Nop()

// setupLogging points logger at cfg.LogFile. The returned func silences
// logger again and closes the file.
func setupLogging(cfg *Config) (func(), error) {
	if cfg.LogFile == "" {
		logger = zerolog.Nop()
		return func() {}, nil
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger = zerolog.New(f).Level(level).With().Timestamp().Logger()
	return func() {
		logger = zerolog.Nop()
		_ = f.Close()
	}, nil
}

// formatDuration returns a human-readable string for a duration.
func formatDuration(d time.Duration) string {
	seconds := int(d.Seconds()) % 60
	minutes := int(d.Minutes()) % 60
	hours := int(d.Hours())
	switch {
	case hours > 0:
		return fmt.Sprintf("%d hour%s, %d minute%s, %d second%s",
			hours, plural(hours),
			minutes, plural(minutes),
			seconds, plural(seconds))
	case minutes > 0:
		return fmt.Sprintf("%d minute%s, %d second%s",
			minutes, plural(minutes),
			seconds, plural(seconds))
	default:
		return fmt.Sprintf("%d second%s", seconds, plural(seconds))
	}
}

// plural returns "s" if n != 1, otherwise "".
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// newRand returns the process-wide random source. A zero seed picks one.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// logInfo logs an info-level message.
func logInfo(format string, v ...any) {
	logger.Info().Msgf(format, v...)
}

// logWarn logs a warning-level message.
func logWarn(format string, v ...any) {
	logger.Warn().Msgf(format, v...)
}

// logFatal logs a fatal error, reports it on stderr and exits.
func logFatal(format string, v ...any) {
	logger.Error().Msgf(format, v...)
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", v...)
	os.Exit(1)
}
