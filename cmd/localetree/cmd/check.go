package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/localetree/localetree/pkg/loader"
	"github.com/localetree/localetree/pkg/translations"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report keys missing from locales relative to the first locale",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}

		patterns, err := cfg.Patterns()
		if err != nil {
			return err
		}

		forest, err := loader.Load(cmd.Context(), cfg.TranslationsDir, patterns)
		if err != nil {
			return err
		}

		locales := forest.Locales()
		base := locales[0]
		baseIndex := translations.Flatten(forest[base])

		baseKeys := make([]string, 0, len(baseIndex))
		for key := range baseIndex {
			baseKeys = append(baseKeys, key)
		}
		slices.Sort(baseKeys)

		out := cmd.OutOrStdout()
		missing := 0
		for _, locale := range locales[1:] {
			index := translations.Flatten(forest[locale])
			for _, key := range baseKeys {
				if _, ok := index[key]; !ok {
					fmt.Fprintf(out, "%s\tmissing\t%s\n", locale, key)
					missing++
				}
			}
		}

		if missing > 0 {
			return fmt.Errorf("check: %d missing translations against base locale %q", missing, base)
		}

		fmt.Fprintf(out, "all locales cover the %d keys of base locale %q\n", len(baseKeys), base)
		return nil
	},
}
