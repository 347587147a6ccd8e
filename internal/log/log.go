// Package log builds the zerolog loggers used by the orderkey command.
package log

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Field names shared by every log line.
const (
	FieldCommand  = "command"
	FieldAlphabet = "alphabet"
	FieldAfter    = "after"
	FieldBefore   = "before"
	FieldCount    = "count"
	FieldKey      = "key"
	FieldBucket   = "bucket"
	FieldJitter   = "jitter"
)

// Config holds logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// New creates a configured zerolog.Logger writing to w.
func New(cfg Config, w io.Writer) zerolog.Logger {
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown names map to
// warn so that a plain invocation only prints keys.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
