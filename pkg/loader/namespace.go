package loader

import (
	"path"
	"strings"

	"github.com/localetree/localetree/pkg/translations"
)

// splitNamespace derives the locale and namespace segments from a file's
// slash-separated path relative to the translations root.
//
// A single-segment path like "en.yml" contributes to the root of the "en"
// tree (no namespace). A multi-segment path like "en/auth/login.js" uses the
// first segment as the locale and the remaining segments, extension
// stripped from the last, as the namespace. A zero-length stem produces an
// empty segment; it is kept as-is and resolved by the merge policy rather
// than silently dropped.
func splitNamespace(rel string) (locale string, segments []string) {
	parts := strings.Split(rel, "/")
	if len(parts) == 1 {
		return stem(parts[0]), nil
	}

	segments = parts[1:]
	segments[len(segments)-1] = stem(segments[len(segments)-1])
	return parts[0], segments
}

func stem(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

// unwrap drops a redundant self-named wrapper: when the parsed content has
// exactly one top-level key equal to the final namespace segment, the value
// under that key is inserted instead of the wrapper. This keeps a file
// settings.yml containing {settings: ...} from landing at settings.settings.
func unwrap(tree translations.Tree, segments []string) any {
	if len(segments) == 0 || len(tree) != 1 {
		return tree
	}
	if inner, ok := tree[segments[len(segments)-1]]; ok {
		return inner
	}
	return tree
}

// nest wraps content under the namespace segments, innermost last.
func nest(segments []string, content any) translations.Tree {
	for i := len(segments) - 1; i >= 0; i-- {
		content = translations.Tree{segments[i]: content}
	}
	return content.(translations.Tree)
}
