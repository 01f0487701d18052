package translations

// Flatten reduces a tree to a flat index from full dot-path to leaf value.
// Branch entries extend the path and recurse; they never appear in the
// index themselves. Null leaves are excluded: an explicit null means the
// key is not translated in this locale, and omitting it is what allows a
// lookup to continue down the fallback chain.
func Flatten(t Tree) map[string]any {
	index := make(map[string]any)
	flattenInto(index, t, "")
	return index
}

func flattenInto(index map[string]any, t Tree, prefix string) {
	for key, value := range t {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := value.(type) {
		case Tree:
			flattenInto(index, v, full)
		case nil:
			// not translated here
		default:
			index[full] = v
		}
	}
}
