// Package logging provides zerolog-based structured logging for ecotrace.
//
// A single logger is constructed at startup from config and threaded through
// the application via context. Packages retrieve it with FromContext and
// attach their component name with ComponentLogger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Unparseable values fall back to info.
	Level string `yaml:"level"`

	// Format selects "console" (human-readable, default) or "json".
	Format string `yaml:"format"`

	// File, when non-empty, appends logs to the given path in addition
	// to stderr.
	File string `yaml:"file"`

	// Caller adds file:line caller annotation to each event.
	Caller bool `yaml:"caller"`
}

const formatJSON = "json"

// LogPathResult reports where New actually sent output, so the CLI can tell
// the user when file logging was requested but fell back to stderr.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string
}

// New constructs a logger from cfg. File-open failures are not fatal: the
// returned LogPathResult records the fallback and the logger writes to
// stderr only.
func New(cfg Config) LogPathResult {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var console io.Writer
	if cfg.Format == formatJSON {
		console = os.Stderr
	} else {
		console = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	writers := []io.Writer{console}
	result := LogPathResult{}

	if cfg.File != "" {
		f, fileErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if fileErr != nil {
			result.FallbackUsed = true
			result.FallbackReason = fileErr.Error()
		} else {
			result.UsingFile = true
			result.FilePath = cfg.File
			writers = append(writers, f)
		}
	}

	logCtx := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp()
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}

	result.Logger = logCtx.Logger()
	return result
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// PrintLogPathMessage tells the user where file logs are going.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user why file logging was not possible.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: file logging unavailable (%s), using stderr\n", reason)
}
