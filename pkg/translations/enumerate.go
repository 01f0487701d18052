package translations

import (
	"cmp"
	"slices"
)

// DefaultMaxDepth bounds the enumeration walk when no explicit bound is
// given. Subtrees nested deeper than the bound contribute no keys; this
// guards against self-referential or pathologically deep shapes without
// turning them into errors.
const DefaultMaxDepth = 9

// ParamField describes one expected parameter of a parameterized leaf.
type ParamField struct {
	Name string
	Kind string
}

// Entry is one addressable key produced by Enumerate. Params is nil for
// static leaves and non-nil (possibly empty) for parameterized leaves.
type Entry struct {
	Path   string
	Params []ParamField
}

// Parameterized reports whether the entry's leaf is a Lambda.
func (e Entry) Parameterized() bool {
	return e.Params != nil
}

// Enumerate walks a tree shape and returns every addressable leaf path,
// sorted lexicographically, together with the expected parameter fields of
// parameterized leaves. Null leaves are skipped, matching Flatten. A
// maxDepth of zero or less selects DefaultMaxDepth; leaves nested deeper
// than maxDepth segments are not reported.
func Enumerate(t Tree, maxDepth int) []Entry {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var entries []Entry
	enumerateInto(&entries, t, "", maxDepth)

	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Path, b.Path)
	})

	return entries
}

func enumerateInto(entries *[]Entry, t Tree, prefix string, depth int) {
	if depth <= 0 {
		return
	}

	for key, value := range t {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := value.(type) {
		case Tree:
			enumerateInto(entries, v, full, depth-1)
		case Lambda:
			*entries = append(*entries, Entry{Path: full, Params: v.paramFields()})
		case nil:
			// unaddressable, see Flatten
		default:
			*entries = append(*entries, Entry{Path: full})
		}
	}
}

func (l Lambda) paramFields() []ParamField {
	fields := make([]ParamField, 0, len(l.Fields))
	for name, kind := range l.Fields {
		fields = append(fields, ParamField{Name: name, Kind: kind})
	}

	slices.SortFunc(fields, func(a, b ParamField) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return fields
}
