package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/localetree/localetree/pkg/config"
	"github.com/localetree/localetree/pkg/loader"
	"github.com/localetree/localetree/pkg/translations"
	"github.com/localetree/localetree/pkg/typegen"
	"github.com/localetree/localetree/pkg/watcher"
)

var watch bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Load translation sources and emit snapshots and key declarations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		if !watch {
			return runBuild(ctx, cfg, log)
		}

		if err := runBuild(ctx, cfg, log); err != nil {
			log.Error("build failed", "error", err)
		}
		return watcher.Watch(ctx, cfg.TranslationsDir, log, func() {
			if err := runBuild(ctx, cfg, log); err != nil {
				log.Error("rebuild failed", "error", err)
			}
		})
	},
}

func init() {
	buildCmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild on file changes")
}

func runBuild(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	patterns, err := cfg.Patterns()
	if err != nil {
		return err
	}

	forest, err := loader.Load(ctx, cfg.TranslationsDir, patterns)
	if err != nil {
		return err
	}
	log.Info("loaded translations", "locales", len(forest), "root", cfg.TranslationsDir)

	if cfg.OutDir != "" {
		if err := translations.WriteSnapshots(cfg.OutDir, forest); err != nil {
			return err
		}
		log.Info("wrote locale snapshots", "dir", cfg.OutDir)
	}

	if cfg.TypesOutFile != "" {
		tree, ok := forest[cfg.DefaultLocale]
		if !ok {
			log.Warn("default locale not present, generating empty key set", "locale", cfg.DefaultLocale)
		}
		opts := typegen.Options{PackageName: cfg.TypesPackage}
		if err := typegen.Write(cfg.TypesOutFile, tree, opts); err != nil {
			return err
		}
		log.Info("wrote key declarations", "file", cfg.TypesOutFile)
	}

	return nil
}
