package loader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/localetree/localetree/pkg/translations"
)

// parseConcurrency bounds the number of files parsed at once. Parsing is
// CPU-bound for module sources, so a small fixed limit is enough.
const parseConcurrency = 8

// Load discovers translation files under root matching the given doublestar
// patterns and assembles one tree per locale. An empty pattern list selects
// DefaultKinds. Files are parsed concurrently but merged in lexicographic
// order of their relative paths, so the resulting forest is deterministic
// for a given set of files.
//
// Any failure — unreadable file, malformed content, non-object top level,
// unsupported leaf — aborts the whole load; there is no partial forest.
func Load(ctx context.Context, root string, patterns []string) (translations.Forest, error) {
	if strings.TrimSpace(root) == "" {
		return nil, ErrInvalidRoot
	}

	if len(patterns) == 0 {
		var err error
		if patterns, err = Patterns(DefaultKinds...); err != nil {
			return nil, err
		}
	}

	fsys := os.DirFS(root)
	files, err := discover(fsys, patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w under %q", ErrNoFilesFound, root)
	}

	parsed := make([]translations.Tree, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parseConcurrency)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := fs.ReadFile(fsys, file)
			if err != nil {
				return fmt.Errorf("loader: reading %s: %w", file, err)
			}

			tree, err := parseFile(file, data)
			if err != nil {
				return err
			}

			parsed[i] = tree
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The merge must stay sequential and follow the canonical file order;
	// only parsing runs in parallel.
	forest := make(translations.Forest)
	for i, file := range files {
		locale, segments := splitNamespace(file)
		content := unwrap(parsed[i], segments)
		forest[locale] = translations.Merge(forest[locale], nest(segments, content))
	}

	return forest, nil
}

// discover matches every pattern against the root filesystem, deduplicates,
// drops directories, and returns the union sorted lexicographically.
func discover(fsys fs.FS, patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("loader: invalid include pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if _, dup := seen[match]; dup {
				continue
			}
			if info, err := fs.Stat(fsys, match); err == nil && info.IsDir() {
				continue
			}
			seen[match] = struct{}{}
			files = append(files, match)
		}
	}

	sort.Strings(files)
	return files, nil
}
