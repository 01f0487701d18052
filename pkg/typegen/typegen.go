// Package typegen emits a generated Go source file declaring every
// addressable translation key as a typed constant, plus the expected
// parameter fields of parameterized keys. Consumers compile against the
// constants, turning unknown keys into build failures.
package typegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/localetree/localetree/pkg/translations"
)

// Options configures artifact generation.
type Options struct {
	// PackageName of the generated file. Defaults to "translations".
	PackageName string

	// MaxDepth bounds the enumeration walk; zero selects the default.
	MaxDepth int
}

type keyDecl struct {
	Ident         string
	Path          string
	Parameterized bool
	Params        []translations.ParamField
}

type fileData struct {
	Package   string
	Keys      []keyDecl
	HasParams bool
}

var fileTemplate = template.Must(template.New("keys").Parse(`// Code generated by localetree. DO NOT EDIT.

package {{.Package}}

// Key is an addressable translation key.
type Key string

{{if .Keys}}const (
{{range .Keys}}	{{.Ident}} Key = {{printf "%q" .Path}}
{{end}})
{{end}}
// KeyParams maps parameterized keys to their expected parameter fields
// (name to primitive kind).
{{if .HasParams}}var KeyParams = map[Key]map[string]string{
{{range .Keys}}{{if .Parameterized}}	{{.Ident}}: {
{{range .Params}}		{{printf "%q" .Name}}: {{printf "%q" .Kind}},
{{end}}	},
{{end}}{{end}}}
{{else}}var KeyParams = map[Key]map[string]string{}
{{end}}`))

// Generate renders the artifact for a tree shape (normally the default
// locale's tree) and returns gofmt-formatted source.
func Generate(tree translations.Tree, opts Options) ([]byte, error) {
	if opts.PackageName == "" {
		opts.PackageName = "translations"
	}

	entries := translations.Enumerate(tree, opts.MaxDepth)

	data := fileData{Package: opts.PackageName, Keys: make([]keyDecl, 0, len(entries))}
	used := make(map[string]int, len(entries))
	for _, entry := range entries {
		data.Keys = append(data.Keys, keyDecl{
			Ident:         uniqueIdent(used, identFor(entry.Path)),
			Path:          entry.Path,
			Parameterized: entry.Parameterized(),
			Params:        entry.Params,
		})
		if entry.Parameterized() {
			data.HasParams = true
		}
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("typegen: rendering artifact: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("typegen: formatting artifact: %w", err)
	}

	return src, nil
}

// Write generates the artifact and writes it to path, creating parent
// directories as needed.
func Write(path string, tree translations.Tree, opts Options) error {
	src, err := Generate(tree, opts)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("typegen: creating output dir %q: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("typegen: writing %q: %w", path, err)
	}

	return nil
}

// identFor turns a dot-path into an exported Go identifier:
// "home.nav.back" becomes "HomeNavBack".
func identFor(path string) string {
	var b strings.Builder
	upper := true
	for _, r := range path {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}

	ident := b.String()
	if ident == "" || unicode.IsDigit(rune(ident[0])) {
		ident = "Key" + ident
	}
	return ident
}

// uniqueIdent disambiguates colliding identifiers deterministically by
// appending a numeric suffix; entries arrive sorted by path, so suffix
// assignment is stable across runs.
func uniqueIdent(used map[string]int, ident string) string {
	used[ident]++
	if n := used[ident]; n > 1 {
		return fmt.Sprintf("%s%d", ident, n)
	}
	return ident
}
