// Package resolver answers translation lookups against a loaded forest.
//
// A resolver flattens every locale's tree into a dot-path index once, at
// construction time, and is immutable afterwards; lookups are O(1) map hits
// and safe for concurrent use. Each call walks an ordered, deduplicated
// locale chain — explicit locale first, then the default locale, then the
// configured fallbacks — and returns the first hit. Parameterized leaves
// are invoked with the caller's parameter record.
//
//	r, err := resolver.New(forest, resolver.Options{
//		DefaultLocale:   "en",
//		FallbackLocales: []string{"pt"},
//	})
//
//	r.T("home.title")                                  // default chain
//	r.TIn("fr", "home.title")                          // explicit locale first
//	r.T("dynamic.hello", translations.Params{"name": "Ada"})
//
// A key that misses every locale in the chain resolves to the key string
// itself. That is the only missing-translation signal: gaps stay visible in
// rendered output without ever failing a lookup. A subtree path, an
// explicit null, and an absent key are deliberately indistinguishable —
// none of them appears in the index, so all three fall through to the next
// locale.
package resolver
