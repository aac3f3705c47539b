package acceptlang

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxHeaderLength bounds the accepted Accept-Language header size. RFC 7231
// sets no limit, but 4KB is generous for legitimate headers while keeping
// malicious ones from ballooning the parse.
const maxHeaderLength = 4096

// Lang is a single language tag from an Accept-Language header with its
// quality value.
type Lang struct {
	Tag     string
	Quality float64
}

// Parse parses an Accept-Language header per RFC 7231 into language tags
// ordered by descending quality. Malformed entries are skipped rather than
// failing the whole header, and oversized headers are truncated.
func Parse(header string) []Lang {
	if header == "" {
		return nil
	}

	if len(header) > maxHeaderLength {
		header = header[:maxHeaderLength]
	}

	var langs []Lang

	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tag, qPart, hasQ := strings.Cut(part, ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		q := 1.0

		if hasQ {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if qVal, err := strconv.ParseFloat(qPart[2:], 64); err == nil && qVal >= 0 && qVal <= 1 {
					q = qVal
				}
			}
		}

		if tag != "" && tag != "*" {
			langs = append(langs, Lang{Tag: tag, Quality: q})
		}
	}

	slices.SortFunc(langs, func(a, b Lang) int {
		return cmp.Compare(b.Quality, a.Quality)
	})

	return langs
}
