package site

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Language is one content language configured for a site.
type Language struct {
	ID      int    `json:"id" yaml:"id"`
	ISOCode string `json:"iso_code" yaml:"iso_code"`
	Title   string `json:"title" yaml:"title"`
}

// Site represents a configured content domain with its own set of
// available languages.
type Site struct {
	ID              uuid.UUID  `json:"id" yaml:"id"`
	Identifier      string     `json:"identifier" yaml:"identifier"`
	Hosts           []string   `json:"hosts" yaml:"hosts"`
	DefaultLanguage Language   `json:"default_language" yaml:"default_language"`
	Languages       []Language `json:"languages" yaml:"languages"`
}

// LanguageByID returns the site language with the given numeric id.
func (s *Site) LanguageByID(id int) (Language, bool) {
	for _, lang := range s.Languages {
		if lang.ID == id {
			return lang, true
		}
	}
	if s.DefaultLanguage.ID == id {
		return s.DefaultLanguage, true
	}
	return Language{}, false
}

// LanguageByCode returns the site language with the given ISO code,
// matched case-insensitively.
func (s *Site) LanguageByCode(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return Language{}, false
	}
	for _, lang := range s.Languages {
		if strings.ToLower(lang.ISOCode) == code {
			return lang, true
		}
	}
	if strings.ToLower(s.DefaultLanguage.ISOCode) == code {
		return s.DefaultLanguage, true
	}
	return Language{}, false
}

// RoutingResult is the outcome of matching a request to a site and,
// when the request carries one, a language within that site.
type RoutingResult struct {
	Site     *Site
	Language *Language
}

// Provider loads site information from a data source.
type Provider interface {
	// GetByIdentifier retrieves a site by its unique identifier.
	// Returns ErrSiteNotFound if no site matches.
	GetByIdentifier(ctx context.Context, identifier string) (*Site, error)

	// GetByHost retrieves the site serving the given host name.
	// Returns ErrSiteNotFound if no site matches.
	GetByHost(ctx context.Context, host string) (*Site, error)
}

// StaticProvider serves a fixed set of sites, typically loaded from
// configuration at startup.
type StaticProvider struct {
	sites []Site
}

// NewStaticProvider creates a provider over the given sites.
func NewStaticProvider(sites ...Site) *StaticProvider {
	return &StaticProvider{sites: sites}
}

// GetByIdentifier implements Provider.
func (p *StaticProvider) GetByIdentifier(_ context.Context, identifier string) (*Site, error) {
	for i := range p.sites {
		if p.sites[i].Identifier == identifier {
			return &p.sites[i], nil
		}
	}
	return nil, ErrSiteNotFound
}

// GetByHost implements Provider.
func (p *StaticProvider) GetByHost(_ context.Context, host string) (*Site, error) {
	host = strings.ToLower(host)
	for i := range p.sites {
		for _, h := range p.sites[i].Hosts {
			if strings.ToLower(h) == host {
				return &p.sites[i], nil
			}
		}
	}
	return nil, ErrSiteNotFound
}
