// Package acceptlang parses Accept-Language headers and extracts the
// client's primary language code.
//
// Parse handles the weighted-preference syntax (q-values) per RFC 7231 and
// returns tags in descending quality order. Primary-language extraction is
// a strategy behind the Matcher interface with two implementations: the
// default TagMatcher built on golang.org/x/text locale services, and a
// minimal PrefixMatcher that pattern-matches the leading two-letter code.
// Pick one at startup via New or construct a strategy directly; resolution
// code never branches on platform capability inline.
package acceptlang
