package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"corpus/internal/api"
	"corpus/internal/api/handler/v1handler"
	"corpus/internal/config"
	"corpus/internal/ingest"
	"corpus/internal/linter"
	"corpus/internal/watcher"
	"corpus/internal/worker"
	"corpus/pkg/logger"
)

// setupServer starts the HTTP server in the background and returns a function
// that shuts it down gracefully.
func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// serveCommand constructs the 'serve' subcommand running the full service:
// API server, background lint workers, an initial corpus sync and the
// filesystem watcher.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server, background workers and the corpus watcher",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			lintSvc := linter.New(strg, linter.NewOptions(cfg))
			engine := linter.NewEngine(cfg.Corpus.Root)
			ingester := ingest.New(strg, lintSvc, ingest.Options{
				Root:        cfg.Corpus.Root,
				IgnoreGlobs: cfg.Corpus.IgnoreGlobs,
			})

			riverClient, err := worker.Start(ctx, strg.Pool, strg, engine, worker.Options{
				MaxWorkers:  cfg.Linter.QueueMaxWorkers,
				MaxAttempts: cfg.Linter.MaxAttempts,
			})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:    v1handler.Deps{Linter: lintSvc},
				Storage: strg,
			})

			// bring storage in line with the corpus on disk before watching
			go func() {
				if _, err := ingester.Sync(ctx); err != nil {
					logger.Error(ctx, "initial corpus sync failed", zap.Error(err))
				}
			}()

			go func() {
				w := watcher.New(ingester, watcher.Options{
					Root:     cfg.Corpus.Root,
					Debounce: cfg.Corpus.WatchDebounce,
				})
				if err := w.Start(ctx); err != nil {
					logger.Error(ctx, "watcher stopped", zap.Error(err))
				}
			}()

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancelShutdown()

			stopWebserver(shutdownCtx)
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
