package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/localetree/localetree/pkg/config"
	"github.com/localetree/localetree/pkg/logger"
)

var (
	cfgFile string
	verbose bool

	// Per-command overrides for the most common config fields.
	flagDir           string
	flagDefaultLocale string
	flagOutDir        string
	flagTypesOut      string
)

var rootCmd = &cobra.Command{
	Use:   "localetree",
	Short: "Compile per-locale translation trees from YAML, JSON, TOML and JS sources",
	Long: `localetree assembles translation source files into one tree per locale,
checks them for gaps, and emits JSON snapshots plus generated Go key
declarations for compile-time validation.

Source layout:
  locales/en.yml            merged at the root of the "en" tree
  locales/en/home.yml       merged under "home"
  locales/en/auth/login.js  merged under "auth.login" (JS modules may
                            export parameterized message functions)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./localetree.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	for _, c := range []*cobra.Command{buildCmd, listCmd, checkCmd} {
		c.Flags().StringVar(&flagDir, "dir", "", "translations root directory (overrides config)")
		c.Flags().StringVar(&flagDefaultLocale, "default-locale", "", "default locale (overrides config)")
		rootCmd.AddCommand(c)
	}

	buildCmd.Flags().StringVar(&flagOutDir, "out", "", "snapshot output directory (overrides config)")
	buildCmd.Flags().StringVar(&flagTypesOut, "types-out", "", "generated Go keys file (overrides config)")
}

// setup loads the config file, applies flag overrides, validates the
// result, and builds the logger.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	if flagDir != "" {
		cfg.TranslationsDir = flagDir
	}
	if flagDefaultLocale != "" {
		cfg.DefaultLocale = flagDefaultLocale
	}
	if flagOutDir != "" {
		cfg.OutDir = flagOutDir
	}
	if flagTypesOut != "" {
		cfg.TypesOutFile = flagTypesOut
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, logger.New(verbose || cfg.Verbose), nil
}
