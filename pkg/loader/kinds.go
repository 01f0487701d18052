package loader

import "fmt"

// SourceKind names a group of file extensions discovered together.
type SourceKind string

const (
	KindYAML   SourceKind = "yaml"
	KindJSON   SourceKind = "json"
	KindTOML   SourceKind = "toml"
	KindModule SourceKind = "module"
)

// DefaultKinds mirrors the common project layout: static YAML files plus
// JavaScript modules for parameterized content.
var DefaultKinds = []SourceKind{KindYAML, KindModule}

var kindPatterns = map[SourceKind][]string{
	KindYAML:   {"**/*.yml", "**/*.yaml"},
	KindJSON:   {"**/*.json"},
	KindTOML:   {"**/*.toml"},
	KindModule: {"**/*.js", "**/*.mjs"},
}

// Patterns expands named source kinds into their discovery globs, preserving
// the order kinds are given in.
func Patterns(kinds ...SourceKind) ([]string, error) {
	patterns := make([]string, 0, 2*len(kinds))
	for _, kind := range kinds {
		expanded, ok := kindPatterns[kind]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
		}
		patterns = append(patterns, expanded...)
	}
	return patterns, nil
}
