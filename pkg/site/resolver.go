package site

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Resolver matches an incoming request to a site and, when the request
// carries one, a language within that site.
type Resolver interface {
	// Resolve matches the request. Returns ErrSiteNotFound when no site
	// serves the request; other errors indicate resolution failures.
	Resolve(r *http.Request) (*RoutingResult, error)
}

// HostResolver matches the request host against each site's configured
// hosts and reads an optional language from the leading path segment
// (e.g. "de" from "/de/news").
type HostResolver struct {
	Provider Provider
}

// NewHostResolver creates a new host resolver.
func NewHostResolver(provider Provider) *HostResolver {
	return &HostResolver{Provider: provider}
}

// Resolve implements Resolver.
func (hr *HostResolver) Resolve(r *http.Request) (*RoutingResult, error) {
	host := r.Host
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}

	s, err := hr.Provider.GetByHost(r.Context(), host)
	if err != nil {
		return nil, err
	}

	result := &RoutingResult{Site: s}
	if code := leadingPathSegment(r.URL.Path); code != "" {
		if lang, ok := s.LanguageByCode(code); ok {
			result.Language = &lang
		}
	}
	return result, nil
}

func leadingPathSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return ""
	}
	segment, _, _ := strings.Cut(path, "/")
	return segment
}

// HeaderResolver reads the site identifier from an HTTP header.
type HeaderResolver struct {
	// HeaderName is the name of the header to read (e.g. "X-Site-ID").
	HeaderName string
	Provider   Provider
}

// NewHeaderResolver creates a new header resolver.
func NewHeaderResolver(headerName string, provider Provider) *HeaderResolver {
	if headerName == "" {
		headerName = "X-Site-ID"
	}
	return &HeaderResolver{HeaderName: headerName, Provider: provider}
}

// Resolve implements Resolver.
func (hr *HeaderResolver) Resolve(r *http.Request) (*RoutingResult, error) {
	identifier := r.Header.Get(hr.HeaderName)
	if identifier == "" {
		return nil, ErrSiteNotFound
	}
	s, err := hr.Provider.GetByIdentifier(r.Context(), identifier)
	if err != nil {
		return nil, err
	}
	return &RoutingResult{Site: s}, nil
}

// PathResolver reads the site identifier and an optional language code
// from chi route parameters (e.g. a "/{site}/{lang}/*" route).
type PathResolver struct {
	// SiteParam is the route parameter holding the site identifier.
	SiteParam string
	// LangParam is the route parameter holding the language code.
	// Optional; leave empty when the route carries no language segment.
	LangParam string
	Provider  Provider
}

// NewPathResolver creates a new path resolver over chi route parameters.
func NewPathResolver(siteParam, langParam string, provider Provider) *PathResolver {
	if siteParam == "" {
		siteParam = "site"
	}
	return &PathResolver{SiteParam: siteParam, LangParam: langParam, Provider: provider}
}

// Resolve implements Resolver.
func (pr *PathResolver) Resolve(r *http.Request) (*RoutingResult, error) {
	identifier := chi.URLParam(r, pr.SiteParam)
	if identifier == "" {
		return nil, ErrSiteNotFound
	}

	s, err := pr.Provider.GetByIdentifier(r.Context(), identifier)
	if err != nil {
		return nil, err
	}

	result := &RoutingResult{Site: s}
	if pr.LangParam != "" {
		if lang, ok := s.LanguageByCode(chi.URLParam(r, pr.LangParam)); ok {
			result.Language = &lang
		}
	}
	return result, nil
}

// CompositeResolver tries multiple resolvers in order until one matches.
type CompositeResolver struct {
	Resolvers []Resolver
}

// NewCompositeResolver creates a new composite resolver.
func NewCompositeResolver(resolvers ...Resolver) *CompositeResolver {
	return &CompositeResolver{Resolvers: resolvers}
}

// Resolve tries each resolver in order, returning the first match.
// ErrSiteNotFound from one resolver moves on to the next; any other
// failure is collected and reported if nothing matches.
func (c *CompositeResolver) Resolve(r *http.Request) (*RoutingResult, error) {
	var errs []error

	for _, resolver := range c.Resolvers {
		result, err := resolver.Resolve(r)
		if err != nil {
			if !errors.Is(err, ErrSiteNotFound) {
				errs = append(errs, err)
			}
			continue
		}
		if result != nil {
			return result, nil
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("composite resolver errors: %w", errors.Join(errs...))
	}
	return nil, ErrSiteNotFound
}

// ResolverFunc is an adapter to allow ordinary functions as Resolvers.
type ResolverFunc func(r *http.Request) (*RoutingResult, error)

// Resolve calls the function.
func (f ResolverFunc) Resolve(r *http.Request) (*RoutingResult, error) {
	return f(r)
}
