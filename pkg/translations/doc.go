// Package translations defines the shared data model for per-locale
// translation trees and the transformations applied to them: deep merging,
// flattening into a dot-path lookup index, key/parameter enumeration for
// code generation, and serialization to plain-data snapshots.
//
// A tree maps string keys to either a leaf or a nested tree. Leaves are
// primitives (string, number, boolean, null) or a [Lambda], a parameterized
// function producing a string. Leaf vs. branch is discriminated at read time
// by a type switch, so trees can be authored directly as literals:
//
//	tree := translations.Tree{
//		"home": translations.Tree{
//			"title": "Home",
//		},
//		"dynamic": translations.Tree{
//			"hello": translations.Lambda{
//				Fields: map[string]string{"name": "string"},
//				Fn: func(p translations.Params) string {
//					return "Hello, " + translations.Stringify(p["name"])
//				},
//			},
//		},
//	}
//
// A [Forest] holds one tree per locale and is treated as immutable once
// produced by a load operation; every transformation in this package reads
// its input without mutating it, so forests and derived indexes can be
// shared freely across goroutines.
//
// # Null semantics
//
// An explicit null leaf means "not translated here", not "empty
// translation". [Flatten] and [Enumerate] skip null leaves, which is what
// lets locale fallback step past them during resolution.
package translations
