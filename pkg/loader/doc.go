// Package loader discovers translation source files under a root directory,
// parses each one into a tree fragment, derives the locale and namespace
// from its location, and deep-merges the fragments into one tree per locale.
//
// Supported source kinds are YAML, JSON and TOML for static data, and
// CommonJS-style JavaScript modules for data with parameterized leaves.
// Discovery uses doublestar glob patterns; a set of named source kinds
// expands to the usual extension globs when no explicit patterns are given.
//
// File layout convention:
//
//	en.yml           -> merged at the root of the "en" tree
//	en/home.yml      -> merged under "home" in the "en" tree
//	en/auth/login.js -> merged under "auth.login" in the "en" tree
//
// When a file's content has exactly one top-level key named like the file
// itself, that wrapper is unwrapped before insertion, so en/settings.yml
// containing {settings: {theme: Dark}} lands at en.settings.theme.
//
// Loading is all-or-nothing: any unreadable, malformed, or structurally
// invalid file aborts the whole load. Files are parsed concurrently but
// merged strictly in lexicographic order of their relative paths, so merge
// outcomes never depend on filesystem enumeration order.
package loader
