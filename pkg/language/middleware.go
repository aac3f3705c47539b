package language

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/sitelang/pkg/frontend"
	"github.com/dmitrymomot/sitelang/pkg/site"
)

// ErrorHandler handles errors that occur during language resolution.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type middlewareConfig struct {
	errorHandler ErrorHandler
	newContext   func(r *http.Request) *frontend.Context
}

// MiddlewareOption configures the middleware.
type MiddlewareOption func(*middlewareConfig)

// WithErrorHandler sets a custom error handler.
func WithErrorHandler(handler ErrorHandler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if handler != nil {
			c.errorHandler = handler
		}
	}
}

// WithContextFactory overrides how the per-request frontend context is
// created, e.g. to preset a non-zero default language id.
func WithContextFactory(factory func(r *http.Request) *frontend.Context) MiddlewareOption {
	return func(c *middlewareConfig) {
		if factory != nil {
			c.newContext = factory
		}
	}
}

// Middleware creates HTTP middleware that resolves the request language,
// applies it to a fresh per-request frontend context and stores that
// context (plus, in site-routing mode, the routing result) on the request
// for downstream handlers.
func Middleware(res *Resolver, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		errorHandler: defaultErrorHandler,
		newContext: func(*http.Request) *frontend.Context {
			return frontend.NewContext(res.Config().DefaultLocale)
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fc := cfg.newContext(r)

			r, err := res.Resolve(r, fc)
			if err != nil {
				cfg.errorHandler(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), fc)))
		})
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *InvalidLanguageError
	switch {
	case errors.As(err, &invalid):
		http.Error(w, invalid.Error(), http.StatusBadRequest)
	case errors.Is(err, site.ErrSiteNotFound):
		http.Error(w, "Site not found", http.StatusNotFound)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
