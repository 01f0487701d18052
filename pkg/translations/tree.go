package translations

import (
	"fmt"
	"slices"
	"strconv"
)

// Tree is a branch node: a mapping from keys to leaves or nested trees.
// Leaf values are string, bool, int, int64, uint64, float64, nil, or Lambda.
type Tree map[string]any

// Forest maps a locale identifier (e.g. "en", "es-MX") to that locale's
// translation tree. A forest is built once per load operation and must be
// treated as read-only afterwards.
type Forest map[string]Tree

// Params is a parameter record passed to a Lambda: parameter name to a
// string or numeric value.
type Params map[string]any

// Lambda is a parameterized leaf: a pure function from an optional
// parameter record to a string. Fields describes the expected parameters
// (name to primitive kind) for enumeration and code generation; it may be
// empty when the shape is unknown.
type Lambda struct {
	Fields map[string]string
	Fn     func(Params) string
}

// Locales returns the locale identifiers present in the forest, sorted
// lexicographically.
func (f Forest) Locales() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// TopLevelKeyCount reports the number of top-level keys in a locale's tree,
// or zero when the locale is absent.
func (f Forest) TopLevelKeyCount(locale string) int {
	return len(f[locale])
}

// Stringify converts a primitive leaf value to its string form.
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", v)
	}
}
