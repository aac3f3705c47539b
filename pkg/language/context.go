package language

import (
	"context"

	"github.com/dmitrymomot/sitelang/pkg/frontend"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithContext adds a frontend context to the request context.
func WithContext(ctx context.Context, fc *frontend.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, fc)
}

// FromContext retrieves the frontend context from the request context.
// Returns nil, false if none is present.
func FromContext(ctx context.Context) (*frontend.Context, bool) {
	fc, ok := ctx.Value(contextKey{}).(*frontend.Context)
	return fc, ok
}

// MustFromContext retrieves the frontend context from the request context.
// Panics if none is present; use only in handlers mounted behind the
// middleware.
func MustFromContext(ctx context.Context) *frontend.Context {
	fc, ok := FromContext(ctx)
	if !ok || fc == nil {
		panic("language: no frontend context in request context")
	}
	return fc
}
