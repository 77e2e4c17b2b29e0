// Package worker hosts the River-based background processing of lint jobs.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"

	"corpus/internal/linter"
	"corpus/pkg/logger"
	"corpus/pkg/storage"
)

// Options configure the worker pool.
type Options struct {
	// MaxWorkers is the number of lint jobs processed concurrently.
	MaxWorkers int
	// MaxAttempts is the retry ceiling applied when marking reports failed.
	MaxAttempts int
}

// Start registers the lint worker and starts a River client on the default
// queue. The returned client must be stopped by the caller on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	strg storage.Storage,
	engine *linter.Engine,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewLintWorker(strg, engine, options.MaxAttempts))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
