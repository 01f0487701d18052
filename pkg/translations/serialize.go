package translations

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Strip returns a plain-data copy of the tree with every Lambda leaf
// removed. Lambdas are omitted entirely, never stringified or invoked, even
// when removal leaves their parent object empty. Static leaves, including
// explicit nulls, are preserved as-is.
func Strip(t Tree) map[string]any {
	out := make(map[string]any, len(t))

	for key, value := range t {
		switch v := value.(type) {
		case Tree:
			out[key] = Strip(v)
		case Lambda:
			// dynamic content never reaches the snapshot
		default:
			out[key] = value
		}
	}

	return out
}

// WriteSnapshots persists one <outDir>/<locale>.json file per locale,
// containing the stripped static content of that locale's tree. Output is
// 2-space indented with lexicographically ordered keys, so repeated runs
// over the same forest are byte-identical.
func WriteSnapshots(outDir string, forest Forest) error {
	if outDir == "" {
		return ErrEmptyOutDir
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("translations: creating output dir %q: %w", outDir, err)
	}

	for _, locale := range forest.Locales() {
		data, err := json.MarshalIndent(Strip(forest[locale]), "", "  ")
		if err != nil {
			return fmt.Errorf("translations: encoding snapshot for %q: %w", locale, err)
		}

		path := filepath.Join(outDir, locale+".json")
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("translations: writing %q: %w", path, err)
		}
	}

	return nil
}
