package site

import (
	"context"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithRouting annotates the context with a routing result. Callers are
// expected to thread the returned context through the request explicitly
// rather than stashing it in shared global state.
func WithRouting(ctx context.Context, result *RoutingResult) context.Context {
	return context.WithValue(ctx, contextKey{}, result)
}

// RoutingFromContext retrieves the routing result from the context.
// Returns nil, false if no routing result is present.
func RoutingFromContext(ctx context.Context) (*RoutingResult, bool) {
	result, ok := ctx.Value(contextKey{}).(*RoutingResult)
	return result, ok
}

// SiteFromContext retrieves just the matched site from the context.
func SiteFromContext(ctx context.Context) (*Site, bool) {
	result, ok := RoutingFromContext(ctx)
	if !ok || result == nil || result.Site == nil {
		return nil, false
	}
	return result.Site, true
}

// LanguageFromContext retrieves the routed language from the context.
// Returns nil, false when routing matched no language.
func LanguageFromContext(ctx context.Context) (*Language, bool) {
	result, ok := RoutingFromContext(ctx)
	if !ok || result == nil || result.Language == nil {
		return nil, false
	}
	return result.Language, true
}
