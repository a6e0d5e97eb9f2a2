// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options for SetupLogger. Out defaults to stderr.
type Options struct {
	Verbosity int
	File      string
	Out       io.Writer
}

// LevelFor maps a -v count to a level: 0 warn, 1 info, 2 debug, more trace.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func init() { Reset() }

// Reset makes the global logger silent again. Packages that log through
// GetLogger write nothing until SetupLogger runs.
func Reset() { log.Logger = zerolog.Nop() }

// SetupLogger configures the global logger. Console output is coloured only
// when it goes to a terminal. When opts.File is set, JSON lines are also
// appended there; a file that cannot be opened is reported and skipped.
func SetupLogger(opts Options) {
	zerolog.SetGlobalLevel(LevelFor(opts.Verbosity))

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(out),
	}

	writers := []io.Writer{console}
	var fileErr error
	if opts.File != "" {
		f, err := openLogFile(opts.File)
		if err != nil {
			fileErr = err
		} else {
			writers = append(writers, f)
		}
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}
	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", opts.File).Msg("Failed to open log file, logging to console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", opts.File).Msg("Logger initialized")
}

// GetLogger returns a child of the global logger tagged with component.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// LogDuration logs how long operation took, at debug level.
func LogDuration(logger zerolog.Logger, start time.Time, operation string) {
	logger.Debug().
		Str("operation", operation).
		Dur("duration", time.Since(start)).
		Msg("Operation completed")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
