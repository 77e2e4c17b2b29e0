package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations are responsible for persisting the job into the underlying
// queue backend. The args parameter contains the job payload and opts can be
// used to customize insertion behavior (e.g., queue name, delay, priority).
// The returned bool is false when the queue skipped the insert because an
// equivalent unique job already exists.
//
// The job should be atomic with respect to any surrounding transaction when
// the backend supports it; the PostgreSQL implementation inserts through the
// ongoing *sql.Tx when called inside WithTx.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
