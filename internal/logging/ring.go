package logging

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultRingSize is the default number of entries kept in the ring.
const DefaultRingSize = 200

// Entry is a single captured log record.
type Entry struct {
	Timestamp time.Time
	Level     slog.Level
	Message   string
	Attrs     map[string]any
}

// Ring is a thread-safe circular buffer of recent WARN+ log entries.
// The UI reads it when a session ends to summarize what went wrong.
type Ring struct {
	mu      sync.RWMutex
	entries []Entry
	size    int
	pos     int
	count   int
}

// NewRing creates a ring that holds the last size entries.
func NewRing(size int) *Ring {
	return &Ring{
		entries: make([]Entry, size),
		size:    size,
	}
}

// Write adds an entry to the ring, evicting the oldest when full.
func (r *Ring) Write(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[r.pos%r.size] = e
	r.pos++
	if r.count < r.size {
		r.count++
	}
}

// Recent returns the last n entries in chronological order.
// If n exceeds the number of stored entries, all entries are returned.
func (r *Ring) Recent(n int) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n > r.count {
		n = r.count
	}
	if n == 0 {
		return nil
	}

	result := make([]Entry, n)
	start := r.pos - n
	for i := 0; i < n; i++ {
		idx := (start + i) % r.size
		if idx < 0 {
			idx += r.size
		}
		result[i] = r.entries[idx]
	}
	return result
}

// Len returns the number of entries currently stored.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// ringHandler is a slog.Handler that forwards to a primary handler and
// captures WARN+ records in a Ring.
type ringHandler struct {
	primary slog.Handler
	ring    *Ring
	level   slog.Level
	attrs   []slog.Attr
	groups  []string
}

func (h *ringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.primary.Enabled(ctx, level)
}

func (h *ringHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		attrs := make(map[string]any)
		for _, a := range h.attrs {
			attrs[a.Key] = a.Value.Any()
		}
		r.Attrs(func(a slog.Attr) bool {
			attrs[a.Key] = a.Value.Any()
			return true
		})
		h.ring.Write(Entry{
			Timestamp: r.Time,
			Level:     r.Level,
			Message:   r.Message,
			Attrs:     attrs,
		})
	}

	return h.primary.Handle(ctx, r)
}

func (h *ringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ringHandler{
		primary: h.primary.WithAttrs(attrs),
		ring:    h.ring,
		level:   h.level,
		attrs:   append(h.attrs, attrs...),
		groups:  h.groups,
	}
}

func (h *ringHandler) WithGroup(name string) slog.Handler {
	return &ringHandler{
		primary: h.primary.WithGroup(name),
		ring:    h.ring,
		level:   h.level,
		attrs:   h.attrs,
		groups:  append(h.groups, name),
	}
}
