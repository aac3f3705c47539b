package site

import "errors"

var (
	// ErrSiteNotFound is returned when no site matches the request.
	ErrSiteNotFound = errors.New("site not found")

	// ErrNoRoutingInContext is returned when no routing result is in context.
	ErrNoRoutingInContext = errors.New("no routing result in context")
)
