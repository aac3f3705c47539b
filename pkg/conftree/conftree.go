package conftree

import (
	"math"
	"strconv"
	"strings"
)

// Entry is a single slot in a Node. The source configuration format uses a
// two-tier key convention: a plain key holds a scalar value while the same
// key with a trailing dot holds a nested subtree, and both may exist at the
// same segment at once. Entry models that pair explicitly instead of relying
// on string-suffix conventions.
type Entry struct {
	Leaf    any
	HasLeaf bool
	Child   *Node
}

// Node maps a path segment to its entry.
type Node map[string]Entry

// Tree is an immutable configuration tree. It is safe for concurrent
// readers once built; none of its methods mutate it.
type Tree struct {
	root Node
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: Node{}}
}

// FromMap builds a tree from a generic nested mapping. Keys with a trailing
// dot become containers, plain keys become leaves, and a nested map value
// under a plain key is treated as a container as well. A scalar and a
// container under the same segment are merged into one entry.
func FromMap(m map[string]any) *Tree {
	return &Tree{root: buildNode(m)}
}

func buildNode(m map[string]any) Node {
	node := make(Node, len(m))
	for key, val := range m {
		segment := strings.TrimSuffix(key, ".")
		if segment == "" {
			continue
		}
		entry := node[segment]
		if nested, ok := toStringMap(val); ok {
			child := buildNode(nested)
			if entry.Child != nil {
				for k, v := range child {
					mergeEntry(entry.Child, k, v)
				}
			} else {
				entry.Child = &child
			}
		} else if key == segment {
			entry.Leaf = val
			entry.HasLeaf = true
		}
		node[segment] = entry
	}
	return node
}

func mergeEntry(dst *Node, key string, src Entry) {
	existing := (*dst)[key]
	if src.HasLeaf {
		existing.Leaf = src.Leaf
		existing.HasLeaf = true
	}
	if src.Child != nil {
		if existing.Child == nil {
			existing.Child = src.Child
		} else {
			for k, v := range *src.Child {
				mergeEntry(existing.Child, k, v)
			}
		}
	}
	(*dst)[key] = existing
}

func toStringMap(val any) (map[string]any, bool) {
	switch m := val.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = v
		}
		return out, true
	}
	return nil, false
}

// Lookup walks the dotted key path one segment at a time and returns the
// value found at the end of it. At every segment the container variant wins
// over the scalar when both exist. A missing segment at any level yields
// (nil, false), never an error.
func (t *Tree) Lookup(keyPath string) (any, bool) {
	if t == nil || keyPath == "" {
		return nil, false
	}
	node := t.root
	segments := strings.Split(keyPath, ".")
	for i, segment := range segments {
		entry, ok := node[segment]
		if !ok {
			return nil, false
		}
		last := i == len(segments)-1
		if last {
			if entry.Child != nil {
				return *entry.Child, true
			}
			if entry.HasLeaf {
				return entry.Leaf, true
			}
			return nil, false
		}
		if entry.Child == nil {
			return nil, false
		}
		node = *entry.Child
	}
	return nil, false
}

// LanguageID looks up keyPath and coerces the value to an integer language
// id. An integer leaf is returned as-is; a string leaf is trimmed, with
// empty-after-trim treated as absent and anything else integer-parsed; any
// other value kind is absent.
func (t *Tree) LanguageID(keyPath string) (int, bool) {
	val, ok := t.Lookup(keyPath)
	if !ok {
		return 0, false
	}
	return CoerceID(val)
}

// CoerceID applies the language-id coercion rule to a raw tree value.
func CoerceID(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		// JSON numbers decode as float64; only integral values qualify.
		if v == math.Trunc(v) {
			return int(v), true
		}
		return 0, false
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		id, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return id, true
	}
	return 0, false
}
