package trace

import (
	"context"

	"github.com/google/uuid"
)

// ctxKey is unexported so callers can only go through the helpers below.
type ctxKey string

const ctxKeyRequestID ctxKey = "request_id"

// GenerateID returns a fresh request ID.
func GenerateID() string {
	return uuid.NewString()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// RequestIDFromContext returns the request ID, or "" when none is set.
func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}
