package shared

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config log level to zerolog, falling back to info.
// debug forces the debug level regardless of level.
func ParseLevel(level string, debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// SetupLogger configures zerolog with pretty console output on stderr
func SetupLogger(level zerolog.Level) zerolog.Logger {
	return NewConsoleLogger(os.Stderr, level)
}

// NewConsoleLogger writes human-readable logs to w
func NewConsoleLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: w != os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// SetupStructuredLogger configures zerolog for structured (JSON) output
func SetupStructuredLogger(level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger()
}
