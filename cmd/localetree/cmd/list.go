package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/localetree/localetree/pkg/loader"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered locales with their top-level key counts",
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

		out := cmd.OutOrStdout()
		for _, locale := range forest.Locales() {
			fmt.Fprintf(out, "%s\t%d\n", locale, forest.TopLevelKeyCount(locale))
		}
		return nil
	},
}
