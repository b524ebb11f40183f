// Package logging provides structured diagnostic logging using zerolog.
// Logs go to stderr and never mix with the report on stdout.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	global = zerolog.Nop()
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string
	// Format is "console" for human-readable output or "json".
	Format string
	// Output defaults to stderr.
	Output io.Writer
	// NoColor disables colored console output.
	NoColor bool
}

// DefaultConfig returns warn-level console logging on stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
		Output: os.Stderr,
	}
}

// New builds a logger from cfg.
func New(cfg Config) zerolog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Format != "json" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.TimeOnly,
			NoColor:    cfg.NoColor,
		}
	}
	return zerolog.New(output).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// Init replaces the process logger. Until Init is called nothing is logged.
func Init(cfg Config) zerolog.Logger {
	l := New(cfg)
	mu.Lock()
	global = l
	mu.Unlock()
	return l
}

// Logger returns the process logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// ParseLevel converts a level name to a zerolog.Level, defaulting to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// Component returns a child of the process logger tagged with name.
func Component(name string) zerolog.Logger {
	return with(Logger(), name)
}

func with(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
