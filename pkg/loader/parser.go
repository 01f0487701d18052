package loader

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/localetree/localetree/pkg/translations"
)

// parseFile dispatches on the file extension and returns the file's content
// as a tree fragment. The path is relative to the translations root and is
// carried into every error.
func parseFile(file string, data []byte) (translations.Tree, error) {
	switch strings.ToLower(path.Ext(file)) {
	case ".yml", ".yaml":
		return parseStatic(file, data, yaml.Unmarshal)
	case ".json":
		return parseStatic(file, data, json.Unmarshal)
	case ".toml":
		return parseStatic(file, data, unmarshalTOML)
	case ".js", ".mjs":
		return parseModule(file, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, file)
	}
}

// parseStatic decodes a static-data file and validates that the top level
// is an object and every leaf is a primitive.
func parseStatic(file string, data []byte, unmarshal func([]byte, any) error) (translations.Tree, error) {
	var raw any
	if err := unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFile, file, err)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAnObject, file)
	}

	return toTree(file, "", obj)
}

// unmarshalTOML adapts the toml decoder to the unmarshal signature used by
// parseStatic. A TOML document's top level is always a table.
func unmarshalTOML(data []byte, v any) error {
	decoded := map[string]any{}
	if err := toml.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*(v.(*any)) = decoded
	return nil
}

func toTree(file, prefix string, raw map[string]any) (translations.Tree, error) {
	tree := make(translations.Tree, len(raw))

	for key, value := range raw {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			sub, err := toTree(file, full, v)
			if err != nil {
				return nil, err
			}
			tree[key] = sub
		case nil, string, bool, int, int64, uint64, float64:
			tree[key] = v
		default:
			return nil, fmt.Errorf("%w: %s: key %q holds %T", ErrUnsupportedValue, file, full, value)
		}
	}

	return tree, nil
}
