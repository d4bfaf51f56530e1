package logging

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// Context keys read by Logger.WithContext.
const (
	ContextKeySessionID contextKey = "session_id"
	ContextKeyRecipeID  contextKey = "recipe_id"
)

// NewSessionID returns a random id for one run of the program.
func NewSessionID() string {
	return uuid.NewString()
}

// WithSessionID stores the run's session id in ctx.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ContextKeySessionID, sessionID)
}

// WithRecipeID stores the id of the recipe being acted on in ctx.
func WithRecipeID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, ContextKeyRecipeID, id)
}

// contextAttrs returns the key/value pairs found in ctx.
func contextAttrs(ctx context.Context) []any {
	var attrs []any
	if id, _ := ctx.Value(ContextKeySessionID).(string); id != "" {
		attrs = append(attrs, string(ContextKeySessionID), id)
	}
	if id, _ := ctx.Value(ContextKeyRecipeID).(int); id != 0 {
		attrs = append(attrs, string(ContextKeyRecipeID), id)
	}
	return attrs
}
