package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"corpus/internal/config"
	"corpus/internal/ingest"
	"corpus/internal/linter"
	"corpus/pkg/logger"
)

// ingestCommand constructs the 'ingest' subcommand that performs a one-shot
// sync of the corpus directory into storage, scheduling lint jobs for every
// changed document.
func ingestCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Syncs the corpus directory into storage",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			lintSvc := linter.New(strg, linter.NewOptions(cfg))
			ingester := ingest.New(strg, lintSvc, ingest.Options{
				Root:        cfg.Corpus.Root,
				IgnoreGlobs: cfg.Corpus.IgnoreGlobs,
			})

			count, err := ingester.Sync(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not sync corpus", zap.Error(err))
			}

			logger.Info(ctx, "corpus ingested", zap.Int("documents", count))
		},
	}

	return cmd
}
