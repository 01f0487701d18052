package translations

import "maps"

// Merge deep-merges source into target and returns a new tree; neither
// input is mutated, so intermediate trees stay inspectable.
//
// When both sides hold a branch under the same key the branches are merged
// recursively. In every other case — leaf over leaf, leaf over branch,
// branch over leaf — the source value replaces the target value entirely.
// Callers that need reproducible outcomes must therefore apply merges in a
// fixed order; the loader sorts files lexicographically by relative path
// before merging.
func Merge(target, source Tree) Tree {
	merged := make(Tree, len(target)+len(source))
	maps.Copy(merged, target)

	for key, value := range source {
		if existing, ok := merged[key].(Tree); ok {
			if incoming, ok := value.(Tree); ok {
				merged[key] = Merge(existing, incoming)
				continue
			}
		}
		merged[key] = value
	}

	return merged
}
