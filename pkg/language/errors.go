package language

import (
	"errors"
	"fmt"
)

// ErrParseConfig is returned when environment configuration cannot be parsed.
var ErrParseConfig = errors.New("failed to parse language resolver configuration")

// InvalidLanguageError reports an explicit locale parameter that resolved
// to no configured language. It is a client-input error and propagates
// uncaught through resolution; the HTTP boundary maps it to a 400.
type InvalidLanguageError struct {
	Locale string
}

// Error implements the error interface.
func (e *InvalidLanguageError) Error() string {
	return fmt.Sprintf("invalid language: no language id configured for locale %q", e.Locale)
}
