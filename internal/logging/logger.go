package logging

import (
	"io"
	"log/slog"
	"os"
)

// Config controls logger behavior.
type Config struct {
	Level     slog.Level
	DevMode   bool
	AddSource bool

	// Output defaults to stderr so log lines never interleave with the
	// interactive form on stdout.
	Output io.Writer
}

// New creates a configured slog.Logger.
// DevMode produces human-readable text; production produces JSON.
func New(cfg Config) *slog.Logger {
	return slog.New(newHandler(cfg))
}

// NewWithRing creates a logger that writes to the normal output and
// captures WARN+ entries in an in-memory ring for the session summary.
func NewWithRing(cfg Config, ring *Ring) *slog.Logger {
	return slog.New(&ringHandler{
		primary: newHandler(cfg),
		ring:    ring,
		level:   cfg.Level,
	})
}

func newHandler(cfg Config) slog.Handler {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource || cfg.DevMode,
	}

	if cfg.DevMode {
		return slog.NewTextHandler(out, opts)
	}
	return slog.NewJSONHandler(out, opts)
}
