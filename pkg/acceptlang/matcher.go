package acceptlang

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// Matcher extracts the primary language code from an Accept-Language
// header value. An empty result means the header carried no usable signal.
type Matcher interface {
	Primary(header string) string
}

// New selects the matching strategy at construction time. The tag matcher
// is the default; hosts that need byte-compatibility with minimal legacy
// stacks can construct a PrefixMatcher instead. The selection happens here
// once, never as an inline capability check during resolution.
func New() Matcher {
	return TagMatcher{}
}

// TagMatcher parses the header per its weighted-preference syntax through
// the Unicode locale services, picks the highest-weighted tag and returns
// its primary subtag ("en" from "en-US").
type TagMatcher struct{}

// Primary implements Matcher.
func (TagMatcher) Primary(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	base, conf := tags[0].Base()
	if conf == language.No {
		return ""
	}
	return base.String()
}

var primaryPrefix = regexp.MustCompile(`^[a-zA-Z]{2}`)

// PrefixMatcher is the minimal fallback strategy: the leading two-letter
// alphabetic prefix of the raw header value, lowercased.
type PrefixMatcher struct{}

// Primary implements Matcher.
func (PrefixMatcher) Primary(header string) string {
	m := primaryPrefix.FindString(strings.TrimSpace(header))
	if m == "" {
		return ""
	}
	return strings.ToLower(m)
}
