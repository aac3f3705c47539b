package frontend

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Context holds the request-scoped rendering state that language
// resolution mutates: the active content language id, the set of query
// parameters preserved on generated links, and the active locale.
//
// A Context must be created per request; it is not safe for sharing
// across concurrent requests.
type Context struct {
	// LanguageID is the active numeric content language id. Hosts preset
	// it to the system default; resolution overrides it only when a
	// request signal wins.
	LanguageID int

	// LinkVars lists query parameters that generated links must carry
	// over, e.g. "L" once a language override is active.
	LinkVars []string

	// Locale is the active ISO locale code. Empty means the default
	// locale prevails.
	Locale string

	defaultLocale string
	tag           language.Tag
	printer       *message.Printer
	activated     bool
}

// NewContext creates a frontend context with the given default locale.
// The default applies whenever no request signal sets a locale.
func NewContext(defaultLocale string) *Context {
	return &Context{defaultLocale: defaultLocale}
}

// SetLanguage applies a language override: the numeric id, the
// link-preservation marker for the language query parameter, and the
// locale code, all together. Callers that have no override simply skip
// this call; the context never ends up partially set.
func (c *Context) SetLanguage(id int, linkVar, locale string) {
	c.LanguageID = id
	if linkVar != "" && !slices.Contains(c.LinkVars, linkVar) {
		c.LinkVars = append(c.LinkVars, linkVar)
	}
	c.Locale = locale
}

// ActivateLocale binds the formatting locale for the remainder of the
// request. It runs unconditionally after resolution, so number and date
// formatting follow the default locale even when no override was set.
func (c *Context) ActivateLocale() {
	code := strings.TrimSpace(c.Locale)
	if code == "" {
		code = c.defaultLocale
	}

	tag, err := language.Parse(code)
	if err != nil || tag == language.Und {
		tag = language.English
	}

	c.tag = tag
	c.printer = message.NewPrinter(tag)
	c.activated = true
}

// Activated reports whether locale activation has run.
func (c *Context) Activated() bool {
	return c.activated
}

// Tag returns the activated locale tag. Valid only after ActivateLocale.
func (c *Context) Tag() language.Tag {
	return c.tag
}

// Printer returns the locale-bound message printer for number and date
// formatting. Valid only after ActivateLocale.
func (c *Context) Printer() *message.Printer {
	return c.printer
}

// Sprintf formats through the active locale printer. Falls back to a
// default-locale printer when activation has not run yet.
func (c *Context) Sprintf(format string, args ...any) string {
	if c.printer == nil {
		c.ActivateLocale()
	}
	return c.printer.Sprintf(format, args...)
}
