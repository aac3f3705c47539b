package conftree

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// ParseYAML unmarshals YAML content into a configuration tree. Keys with a
// trailing dot and nested mappings both become containers, so trees written
// in the two-tier source convention and trees written as plain nested YAML
// load identically.
func ParseYAML(content []byte) (*Tree, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrParseYAML, err)
	}
	return FromMap(data), nil
}

// ParseJSON unmarshals JSON content into a configuration tree.
func ParseJSON(content []byte) (*Tree, error) {
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrParseJSON, err)
	}
	return FromMap(data), nil
}
