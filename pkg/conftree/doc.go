// Package conftree provides a read-only nested configuration tree with
// dotted key-path lookup, modeled after TypoScript-style setup trees.
//
// The source format uses a two-tier key convention: a plain key holds a
// scalar value while the same key with a trailing dot holds a nested
// subtree, and both forms may coexist at one segment. The tree keeps both
// sides of that pair in a single Entry, and Lookup prefers the container
// over the scalar whenever both are present at a segment.
//
// Lookups are total: a missing segment at any level yields "not found",
// never an error. Trees are immutable after construction and safe to share
// across concurrent requests.
//
// # Usage
//
//	tree, err := conftree.ParseYAML(raw)
//	if err != nil {
//		log.Fatalf("failed to load configuration: %v", err)
//	}
//
//	id, ok := tree.LanguageID("plugin.rest.settings.languages.de")
//	if !ok {
//		// no language configured for "de"
//	}
package conftree
