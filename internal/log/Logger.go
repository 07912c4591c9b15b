// Package log configures the process-wide structured logger used by
// the command line tools.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger
type Config struct {
	// Level names the minimum level to emit ("debug", "info", ...).
	// The LOG_LEVEL environment variable is consulted when unset.
	Level string

	// Output is the destination writer, os.Stderr when nil
	Output io.Writer

	// Console renders human-readable console output instead of JSON
	// lines
	Console bool
}

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the global logger exactly once. Later calls
// are ignored, so the command line entry point should call Configure
// before any logging happens.
func Configure(cfg Config) {
	once.Do(func() {
		level := zerolog.InfoLevel
		if cfg.Level == "" {
			cfg.Level = os.Getenv("LOG_LEVEL")
		}
		if cfg.Level != "" {
			if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
				level = parsed
			}
		}
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = time.RFC3339

		writer := cfg.Output
		if writer == nil {
			writer = os.Stderr
		}
		if cfg.Console {
			writer = zerolog.ConsoleWriter{
				Out:        writer,
				TimeFormat: time.Kitchen,
			}
		}

		base = zerolog.New(writer).With().
			Timestamp().
			Str("service", "expspec").
			Logger()
	})
}

// Base returns the configured base logger, configuring defaults first
// when necessary
func Base() zerolog.Logger {
	Configure(Config{})
	return base
}

// WithComponent returns a child logger annotated with the given
// component name
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str(FieldComponent, component).Logger()
}
