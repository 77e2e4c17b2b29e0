package worker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"corpus/internal/linter"
	"corpus/pkg/domain"
	"corpus/pkg/logger"
	"corpus/pkg/metrics"
	"corpus/pkg/serrors"
	"corpus/pkg/storage"
)

// LintWorker is a River worker that checks one content revision of a corpus
// document and completes every pending report keyed by that revision's
// checksum.
//
// Jobs are unique per checksum, so a single run may satisfy many reports:
// re-ingesting an unchanged file, or the same content appearing at several
// paths, all collapse onto one job. Before doing any work the worker verifies
// that pending reports still exist for the checksum; if every report was
// deleted in the meantime the job is canceled instead of linting into the
// void. If the file changed on disk between enqueue and execution, the run is
// canceled too: a new job for the new checksum is already queued by the
// ingester.
type LintWorker struct {
	river.WorkerDefaults[linter.JobArgs]

	// storage persists findings and report status transitions.
	storage storage.Storage
	// engine runs the lint rules against files under the corpus root.
	engine *linter.Engine
	// maxAttempts guards the pending-to-failed transition: reports only fail
	// once the attempt count reaches this ceiling, otherwise they stay pending
	// for River's next retry.
	maxAttempts int
}

// NewLintWorker constructs a LintWorker.
func NewLintWorker(strg storage.Storage, engine *linter.Engine, maxAttempts int) *LintWorker {
	return &LintWorker{
		storage:     strg,
		engine:      engine,
		maxAttempts: maxAttempts,
	}
}

// Work lints the document revision described by the job and updates all
// pending reports for its checksum.
func (w *LintWorker) Work(ctx context.Context, job *river.Job[linter.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("path", job.Args.Path),
		zap.String("checksum", job.Args.Checksum))

	pending, err := w.storage.PendingReportCountByChecksum(ctx, job.Args.Checksum)
	if err != nil {
		return fmt.Errorf("could not count pending reports: %w", err)
	}
	if pending == 0 {
		// all reports for this revision were deleted, nothing to do
		return river.JobCancel(serrors.With(serrors.ErrConflict, "no pending reports left"))
	}

	findings, checksum, err := w.engine.LintFile(ctx, job.Args.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// the file is gone; the ingester will soft-delete the document and
			// its reports on the next sync
			return river.JobCancel(serrors.Wrap(serrors.ErrConflict, err, "document disappeared"))
		}

		logger.Error(ctx, "error linting document", zap.Error(err))

		return w.fail(ctx, job.Args.Checksum, err)
	}

	if checksum != job.Args.Checksum {
		// the file changed since the job was enqueued; a job for the new
		// revision is already in the queue
		return river.JobCancel(serrors.With(serrors.ErrConflict,
			"content changed, expected %s got %s", job.Args.Checksum, checksum))
	}

	if err := w.storage.UpdatePendingReportsByChecksum(ctx, job.Args.Checksum, storage.ReportUpdates{
		Status:   domain.ReportStatusCompleted,
		Findings: &findings,
	}); err != nil {
		return fmt.Errorf("could not complete reports: %w", err)
	}

	metrics.LintRuns.WithLabelValues(metrics.ResultCompleted).Inc()
	metrics.LintFindings.Add(float64(len(findings)))

	logger.Info(ctx, "document linted", zap.Int("findings", len(findings)))

	return nil
}

// fail records the error on all pending reports for the checksum. The status
// only flips to failed when the attempt count reaches the retry ceiling;
// until then reports stay pending and River retries the job.
func (w *LintWorker) fail(ctx context.Context, checksum string, cause error) error {
	msg := cause.Error()
	if err := w.storage.UpdatePendingReportsByChecksum(ctx, checksum, storage.ReportUpdates{
		Status:      domain.ReportStatusFailed,
		LastError:   &msg,
		MaxAttempts: w.maxAttempts,
	}); err != nil {
		return fmt.Errorf("could not record lint failure: %w", err)
	}

	metrics.LintRuns.WithLabelValues(metrics.ResultFailed).Inc()

	return fmt.Errorf("could not lint document: %w", cause)
}
