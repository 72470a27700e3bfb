/*
Package logging builds gogo's structured logger. Logs always go to stderr (or a
caller-provided writer) because stdout is reserved for shell-evaluable output.
*/
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// Config is a minimal set of logger options.
type Config struct {
	Version string

	// If Out is nil, stderr is used.
	Out io.Writer

	Level slog.Level

	// JSON forces JSON output. When false, JSON is still used if Out is
	// stderr and stderr is not a terminal.
	JSON bool
}

// New creates a configured *slog.Logger.
// On a terminal it uses slog.TextHandler; when stderr is redirected it uses
// slog.JSONHandler so the output stays machine-parseable.
func New(cfg Config) *slog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	useJSON := cfg.JSON
	if !useJSON && out == os.Stderr {
		useJSON = !term.IsTerminal(int(os.Stderr.Fd()))
	}

	options := &slog.HandlerOptions{Level: cfg.Level}
	var handler slog.Handler
	if useJSON {
		handler = slog.NewJSONHandler(out, options)
	} else {
		handler = slog.NewTextHandler(out, options)
	}

	logger := slog.New(handler)
	if cfg.Version != "" {
		logger = logger.With(slog.String("version", cfg.Version))
	}
	return logger
}

// NewNop returns a logger that discards all log events.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps a level name to a slog.Level. Unknown or empty names yield fallback.
func ParseLevel(name string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return fallback
}

type ctxKeyType struct{}

var ctxKey ctxKeyType

// ContextWithLogger stores lg on ctx.
func ContextWithLogger(ctx context.Context, lg *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey, lg)
}

// FromContext returns the logger stored on ctx, or a discarding logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return NewNop()
	}
	if lg, ok := ctx.Value(ctxKey).(*slog.Logger); ok && lg != nil {
		return lg
	}
	return NewNop()
}
