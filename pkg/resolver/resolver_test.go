package resolver_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/localetree/localetree/pkg/resolver"
	"github.com/localetree/localetree/pkg/translations"
)

func helloLambda() translations.Lambda {
	return translations.Lambda{
		Fields: map[string]string{"name": "string"},
		Fn: func(p translations.Params) string {
			return "Hello, " + translations.Stringify(p["name"])
		},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires a default locale", func(t *testing.T) {
		t.Parallel()
		_, err := resolver.New(translations.Forest{}, resolver.Options{})
		require.ErrorIs(t, err, resolver.ErrEmptyDefaultLocale)
	})

	t.Run("exposes sorted locales", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(translations.Forest{
			"pt": translations.Tree{},
			"en": translations.Tree{},
			"de": translations.Tree{},
		}, resolver.Options{DefaultLocale: "en"})
		require.NoError(t, err)
		require.Equal(t, []string{"de", "en", "pt"}, r.Locales())
		require.Equal(t, "en", r.DefaultLocale())
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("resolves a key in the default locale", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(translations.Forest{
			"en": translations.Tree{"home": translations.Tree{"title": "Home"}},
		}, resolver.Options{DefaultLocale: "en"})
		require.NoError(t, err)
		require.Equal(t, "Home", r.T("home.title"))
	})

	t.Run("falls back when the default locale misses", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(translations.Forest{
			"en": translations.Tree{},
			"pt": translations.Tree{"home": translations.Tree{"title": "Início"}},
		}, resolver.Options{DefaultLocale: "en", FallbackLocales: []string{"pt"}})
		require.NoError(t, err)
		require.Equal(t, "Início", r.T("home.title"))
	})

	t.Run("missing everywhere echoes the key", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(translations.Forest{
			"en": translations.Tree{},
		}, resolver.Options{DefaultLocale: "en"})
		require.NoError(t, err)
		require.Equal(t, "not.a.real.key", r.T("not.a.real.key"))
	})

	t.Run("invokes parameterized leaves", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(translations.Forest{
			"en": translations.Tree{"dynamic": translations.Tree{"hello": helloLambda()}},
		}, resolver.Options{DefaultLocale: "en"})
		require.NoError(t, err)
		require.Equal(t, "Hello, Ada", r.T("dynamic.hello", translations.Params{"name": "Ada"}))
	})

	t.Run("null is not a translation", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(translations.Forest{
			"en": translations.Tree{"a": nil},
			"pt": translations.Tree{"a": "X"},
		}, resolver.Options{DefaultLocale: "en", FallbackLocales: []string{"pt"}})
		require.NoError(t, err)
		require.Equal(t, "X", r.T("a"))
	})

	t.Run("a subtree path falls through like a miss", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(translations.Forest{
			"en": translations.Tree{"home": translations.Tree{"title": "Home"}},
			"pt": translations.Tree{"home": "Tudo"},
		}, resolver.Options{DefaultLocale: "en", FallbackLocales: []string{"pt"}})
		require.NoError(t, err)
		require.Equal(t, "Tudo", r.T("home"))
	})

	t.Run("explicit locale takes precedence over the whole chain", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(translations.Forest{
			"en": translations.Tree{"home": translations.Tree{"title": "Home"}},
			"fr": translations.Tree{"home": translations.Tree{"title": "Accueil"}},
			"pt": translations.Tree{"home": translations.Tree{"title": "Início"}},
		}, resolver.Options{DefaultLocale: "en", FallbackLocales: []string{"pt"}})
		require.NoError(t, err)
		require.Equal(t, "Accueil", r.TIn("fr", "home.title"))
	})

	t.Run("explicit locale still falls back on a miss", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(translations.Forest{
			"en": translations.Tree{"home": translations.Tree{"title": "Home"}},
			"fr": translations.Tree{},
		}, resolver.Options{DefaultLocale: "en"})
		require.NoError(t, err)
		require.Equal(t, "Home", r.TIn("fr", "home.title"))
	})

	t.Run("stringifies numeric and boolean leaves", func(t *testing.T) {
		t.Parallel()
		r, err := resolver.New(translations.Forest{
			"en": translations.Tree{"count": 5, "enabled": true},
		}, resolver.Options{DefaultLocale: "en"})
		require.NoError(t, err)
		require.Equal(t, "5", r.T("count"))
		require.Equal(t, "true", r.T("enabled"))
	})

	t.Run("calls the missing key handler once per full miss", func(t *testing.T) {
		t.Parallel()
		var mu sync.Mutex
		var missed []string
		r, err := resolver.New(translations.Forest{
			"en": translations.Tree{"hit": "ok"},
		}, resolver.Options{
			DefaultLocale: "en",
			MissingKeyHandler: func(locale, key string) {
				mu.Lock()
				defer mu.Unlock()
				missed = append(missed, locale+":"+key)
			},
		})
		require.NoError(t, err)

		require.Equal(t, "ok", r.T("hit"))
		require.Empty(t, missed)

		require.Equal(t, "gone", r.T("gone"))
		require.Equal(t, []string{"en:gone"}, missed)
	})
}

func TestResolveLooseArguments(t *testing.T) {
	t.Parallel()

	forest := translations.Forest{
		"en": translations.Tree{
			"home":    translations.Tree{"title": "Home"},
			"dynamic": translations.Tree{"hello": helloLambda()},
		},
		"fr": translations.Tree{"home": translations.Tree{"title": "Accueil"}},
	}

	r, err := resolver.New(forest, resolver.Options{DefaultLocale: "en"})
	require.NoError(t, err)

	t.Run("no extra arguments", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Home", r.Resolve("home.title"))
	})

	t.Run("string argument is an explicit locale", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Accueil", r.Resolve("home.title", "fr"))
	})

	t.Run("map argument is the parameter record", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello, Ada", r.Resolve("dynamic.hello", map[string]any{"name": "Ada"}))
	})

	t.Run("locale and parameters together", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello, Ada", r.Resolve("dynamic.hello", "en", translations.Params{"name": "Ada"}))
	})
}

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	available := []string{"en", "fr", "pt-BR"}

	t.Run("empty header picks the first available", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "en", resolver.MatchAcceptLanguage("", available))
	})

	t.Run("exact match wins", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "fr", resolver.MatchAcceptLanguage("fr", available))
	})

	t.Run("quality ordering is honored", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "fr", resolver.MatchAcceptLanguage("de;q=0.9,fr;q=0.8,en;q=0.1", available))
	})

	t.Run("base language satisfies a regional request", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "en", resolver.MatchAcceptLanguage("en-US", available))
	})

	t.Run("regional locale satisfies a base request", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "pt-BR", resolver.MatchAcceptLanguage("pt", available))
	})

	t.Run("no available locales yields empty", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", resolver.MatchAcceptLanguage("en", nil))
	})

	t.Run("garbage header picks the first available", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "en", resolver.MatchAcceptLanguage(";;;", available))
	})
}

func TestTAccept(t *testing.T) {
	t.Parallel()

	r, err := resolver.New(translations.Forest{
		"en": translations.Tree{"home": translations.Tree{"title": "Home"}},
		"fr": translations.Tree{"home": translations.Tree{"title": "Accueil"}},
	}, resolver.Options{DefaultLocale: "en"})
	require.NoError(t, err)

	require.Equal(t, "Accueil", r.TAccept("fr;q=1.0,en;q=0.2", "home.title"))
	require.Equal(t, "Home", r.TAccept("", "home.title"))
}
