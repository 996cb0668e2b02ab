// Package log builds the slog loggers used by the parser and carries them through
// context.Context so callbacks can log under the same invocation attributes.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// LevelTrace sits below slog.LevelDebug and is used for per-token parser output
const LevelTrace = slog.Level(-8)

// EnvLevel names the environment variable overriding the default level
const EnvLevel = "GOINPUT_LOG_LEVEL"

// Format selects the handler used to render records
type Format int

const (
	FormatAuto Format = iota // text when writing to a terminal, JSON otherwise
	FormatText
	FormatJSON
)

// String returns the string representation of a Format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	}
	return "auto"
}

type config struct {
	level  slog.Level
	format Format
}

// Option configures a logger built by New
type Option func(*config)

// WithLevel sets the minimum level
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithFormat sets the output format
func WithFormat(format Format) Option {
	return func(c *config) {
		c.format = format
	}
}

// New creates a logger writing to w. The default level is warn unless EnvLevel holds
// a valid level name.
func New(w io.Writer, opts ...Option) *slog.Logger {
	cfg := config{level: slog.LevelWarn, format: FormatAuto}
	if env, ok := os.LookupEnv(EnvLevel); ok {
		if level, err := ParseLevel(env); err == nil {
			cfg.level = level
		}
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       cfg.level,
		ReplaceAttr: replaceLevelName,
	}

	if resolveFormat(w, cfg.format) == FormatText {
		return slog.New(slog.NewTextHandler(w, handlerOpts))
	}

	return slog.New(slog.NewJSONHandler(w, handlerOpts))
}

// Discard returns a logger which drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func resolveFormat(w io.Writer, f Format) Format {
	if f != FormatAuto {
		return f
	}
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return FormatText
	}

	return FormatJSON
}

func replaceLevelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok && level <= LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}

	return a
}

// ParseLevel returns the level named s (trace, debug, info, warn or error)
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("unknown log level %q", s)
}

// ParseFormat returns the format named s (auto, text or json)
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}

	return FormatAuto, fmt.Errorf("unknown log format %q", s)
}
