// Package frontend carries the request-scoped rendering context that
// language resolution feeds: the active content language id, the query
// parameters preserved on generated links, and the active locale.
//
// Locale activation binds a golang.org/x/text message printer to the
// resolved locale so that number and date formatting for the remainder of
// the request follow it. Activation always runs, with or without a
// language override, so the default locale is established either way.
package frontend
