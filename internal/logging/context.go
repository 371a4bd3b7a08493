package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"
)

type contextKey string

const generationIDKey contextKey = "generation_id"

// WithGenerationID stores a generation ID in the context.
func WithGenerationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, generationIDKey, id)
}

// GenerationID extracts the generation ID from the context.
// Returns empty string if not set.
func GenerationID(ctx context.Context) string {
	id, _ := ctx.Value(generationIDKey).(string)
	return id
}

// NewGenerationID creates a new generation ID in the format "gen_<12 hex chars>".
// Each submit of the form gets its own ID so log events of one generation
// can be correlated.
func NewGenerationID() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("gen_%d", time.Now().UnixNano())
	}
	return "gen_" + hex.EncodeToString(b)
}

// LogAttrsFromContext extracts the generation ID from context and returns
// it as slog attributes. Only non-empty values are included.
func LogAttrsFromContext(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if id := GenerationID(ctx); id != "" {
		attrs = append(attrs, slog.String("generation_id", id))
	}
	return attrs
}
