package resolver

import (
	"maps"

	"github.com/localetree/localetree/pkg/translations"
)

// Options configures a Resolver.
type Options struct {
	// DefaultLocale is tried after an explicit locale and before the
	// fallbacks. Required.
	DefaultLocale string

	// FallbackLocales are tried in order after the default locale.
	FallbackLocales []string

	// MissingKeyHandler, when set, is called after a key misses every
	// locale in the chain. Useful for spotting untranslated keys during
	// development; the lookup still resolves to the key itself.
	MissingKeyHandler func(locale, key string)
}

// Resolver resolves dot-path keys through a locale fallback chain. It is
// immutable after construction and safe for concurrent use.
type Resolver struct {
	indexes           map[string]map[string]any
	locales           []string
	defaultLocale     string
	fallbacks         []string
	missingKeyHandler func(locale, key string)
}

// New builds one flattened index per locale in the forest. The forest is
// only read, never retained mutably; repeated lookups carry no further
// transformation cost.
func New(forest translations.Forest, opts Options) (*Resolver, error) {
	if opts.DefaultLocale == "" {
		return nil, ErrEmptyDefaultLocale
	}

	indexes := make(map[string]map[string]any, len(forest))
	for locale, tree := range forest {
		indexes[locale] = translations.Flatten(tree)
	}

	return &Resolver{
		indexes:           indexes,
		locales:           forest.Locales(),
		defaultLocale:     opts.DefaultLocale,
		fallbacks:         opts.FallbackLocales,
		missingKeyHandler: opts.MissingKeyHandler,
	}, nil
}

// Resolve looks up key with loosely typed arguments: a string argument is
// an explicit locale override, a Params (or plain map) argument is the
// parameter record. Extra arguments of either kind are ignored beyond the
// first occurrence.
func (r *Resolver) Resolve(key string, args ...any) string {
	var explicit string
	var params translations.Params

	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			if explicit == "" {
				explicit = v
			}
		case translations.Params:
			if params == nil {
				params = v
			}
		case map[string]any:
			if params == nil {
				params = translations.Params(v)
			}
		}
	}

	return r.resolve(key, explicit, params)
}

// T resolves key through the default chain.
func (r *Resolver) T(key string, params ...translations.Params) string {
	return r.resolve(key, "", mergeParams(params))
}

// TIn resolves key trying the explicit locale before the default chain.
func (r *Resolver) TIn(locale, key string, params ...translations.Params) string {
	return r.resolve(key, locale, mergeParams(params))
}

// TAccept resolves key for the best available locale matching an HTTP
// Accept-Language header.
func (r *Resolver) TAccept(header, key string, params ...translations.Params) string {
	return r.resolve(key, MatchAcceptLanguage(header, r.locales), mergeParams(params))
}

// Locales returns the locales present in the underlying forest, sorted.
func (r *Resolver) Locales() []string {
	return r.locales
}

// DefaultLocale returns the configured default locale.
func (r *Resolver) DefaultLocale() string {
	return r.defaultLocale
}

func (r *Resolver) resolve(key, explicit string, params translations.Params) string {
	for _, locale := range r.chain(explicit) {
		index, ok := r.indexes[locale]
		if !ok {
			continue
		}

		value, ok := index[key]
		if !ok {
			continue
		}

		if lambda, ok := value.(translations.Lambda); ok {
			if lambda.Fn == nil {
				continue
			}
			return lambda.Fn(params)
		}

		return translations.Stringify(value)
	}

	if r.missingKeyHandler != nil {
		locale := explicit
		if locale == "" {
			locale = r.defaultLocale
		}
		r.missingKeyHandler(locale, key)
	}

	return key
}

// chain builds the per-call fallback chain: explicit locale (when given),
// default locale, then configured fallbacks, deduplicated keeping the first
// occurrence.
func (r *Resolver) chain(explicit string) []string {
	chain := make([]string, 0, 2+len(r.fallbacks))
	seen := make(map[string]struct{}, 2+len(r.fallbacks))

	add := func(locale string) {
		if locale == "" {
			return
		}
		if _, dup := seen[locale]; dup {
			return
		}
		seen[locale] = struct{}{}
		chain = append(chain, locale)
	}

	add(explicit)
	add(r.defaultLocale)
	for _, locale := range r.fallbacks {
		add(locale)
	}

	return chain
}

func mergeParams(params []translations.Params) translations.Params {
	switch len(params) {
	case 0:
		return nil
	case 1:
		return params[0]
	}

	merged := make(translations.Params)
	for _, p := range params {
		maps.Copy(merged, p)
	}
	return merged
}
