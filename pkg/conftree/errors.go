package conftree

import "errors"

var (
	// ErrParseYAML is returned when YAML content cannot be parsed.
	ErrParseYAML = errors.New("failed to parse YAML configuration")

	// ErrParseJSON is returned when JSON content cannot be parsed.
	ErrParseJSON = errors.New("failed to parse JSON configuration")
)
