package linter

import (
	"context"
	"fmt"
	"time"

	"corpus/internal/config"
	"corpus/pkg/domain"
	"corpus/pkg/serrors"
	"corpus/pkg/storage"
)

// Options configure how lint jobs are enqueued and how results are cached.
// These settings are typically derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing a lint job before marking reports failed.
	MaxAttempts int
	// ResultCacheTTL is the duration during which a completed report makes new
	// lint requests for the same checksum reuse that report instead of
	// enqueueing a duplicate job.
	ResultCacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:    cfg.Linter.MaxAttempts,
		ResultCacheTTL: cfg.Linter.ResultCacheTTL,
	}
}

// linter is the concrete implementation of the Linter interface. It
// coordinates persistence with the storage layer and job enqueueing.
type linter struct {
	// options holds runtime configuration that affects enqueueing and caching.
	options Options
	// storage is the persistence layer used to store reports and manage jobs.
	storage storage.Storage
}

// Enqueue stores a new pending report for the given document revision and
// attempts to enqueue a background job to process it. If a completed report
// already exists for the same checksum, the new report is immediately marked
// completed with those findings.
func (l linter) Enqueue(ctx context.Context, doc domain.Document) (*domain.Report, error) {
	var report *domain.Report

	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreReports(ctx, domain.Report{
			DocumentID: doc.ID,
			Checksum:   doc.Checksum,
			Status:     domain.ReportStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store report: %w", err)
		}
		report = &res[0]

		jobAdded, err := tx.AddJob(ctx, JobArgs{
			Checksum:        doc.Checksum,
			Path:            doc.Path,
			maxAttempts:     l.options.MaxAttempts,
			uniqueJobPeriod: l.options.ResultCacheTTL,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		// if a job was not added, another job already exists for this checksum.
		// river unique jobs prevent duplicate work per content revision.
		if !jobAdded {
			// if the existing job already completed, reuse its findings for the
			// new report right away
			last, err := tx.LastCompletedReportByChecksum(ctx, doc.Checksum)
			if err != nil {
				return fmt.Errorf("could not get last completed report: %w", err)
			}

			if last != nil {
				findings := last.Findings
				updated, err := tx.UpdateReportByID(ctx, report.ID, storage.ReportUpdates{
					Status:   domain.ReportStatusCompleted,
					Findings: &findings,
				})
				if err != nil {
					return fmt.Errorf("could not update report: %w", err)
				}
				report = updated
			} // else: the job is in the queue and will complete all pending
			// reports for the checksum when it finishes.
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue lint: %w", err)
	}

	return report, nil
}

// Relint looks up the document and schedules a fresh lint run for its current
// revision.
func (l linter) Relint(ctx context.Context, id domain.DocumentID) (*domain.Report, error) {
	doc, err := l.storage.DocumentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get document: %w", err)
	}
	if doc == nil {
		return nil, serrors.With(serrors.ErrNotFound, "document not found")
	}

	return l.Enqueue(ctx, *doc)
}

// Documents returns a page of documents filtered by topic and kind. It
// supports cursor-based pagination using an RFC3339 timestamp string with
// nanosecond precision and
// returns the next cursor when more results are available.
func (l linter) Documents(ctx context.Context,
	topic string,
	kind domain.DocumentKind,
	cursor string,
	limit uint) ([]domain.Document, string, error) {
	if kind != "" && !domain.KnownKind(kind) {
		return nil, "", serrors.With(serrors.ErrBadRequest, "unknown document kind %q", kind)
	}

	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := l.storage.Documents(ctx, storage.DocumentFilter{Topic: topic, Kind: kind}, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get documents: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339Nano)
	}

	return page.Documents, next, nil
}

// Document fetches a single document by ID. It returns a not-found error when
// no matching document exists.
func (l linter) Document(ctx context.Context, id domain.DocumentID) (*domain.Document, error) {
	doc, err := l.storage.DocumentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get document: %w", err)
	}
	if doc == nil {
		return nil, serrors.With(serrors.ErrNotFound, "document not found")
	}

	return doc, nil
}

// Report fetches the latest lint report of a document.
func (l linter) Report(ctx context.Context, id domain.DocumentID) (*domain.Report, error) {
	doc, err := l.storage.DocumentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get document: %w", err)
	}
	if doc == nil {
		return nil, serrors.With(serrors.ErrNotFound, "document not found")
	}

	report, err := l.storage.LatestReportByDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get report: %w", err)
	}
	if report == nil {
		return nil, serrors.With(serrors.ErrNotFound, "document has no report yet")
	}

	return report, nil
}

// Delete soft-deletes a document and its reports. Queue jobs are left alone
// because other documents may share the same checksum; the worker checks for
// remaining pending reports before processing.
func (l linter) Delete(ctx context.Context, id domain.DocumentID) error {
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		doc, err := tx.DeleteDocument(ctx, id)
		if err != nil {
			return fmt.Errorf("could not delete document: %w", err)
		}
		if doc == nil {
			return serrors.With(serrors.ErrNotFound, "document not found")
		}

		if err := tx.DeleteReportsByDocument(ctx, id); err != nil {
			return fmt.Errorf("could not delete reports: %w", err)
		}

		return tx.ReplaceQuestions(ctx, id)
	}); err != nil {
		return err //nolint: wrapcheck
	}

	return nil
}

// Topics returns the corpus navigation structure.
func (l linter) Topics(ctx context.Context) ([]domain.Topic, error) {
	topics, err := l.storage.Topics(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get topics: %w", err)
	}

	return topics, nil
}

// Questions returns interview questions, optionally filtered by topic.
func (l linter) Questions(ctx context.Context, topic string) ([]domain.Question, error) {
	questions, err := l.storage.Questions(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("could not get questions: %w", err)
	}

	return questions, nil
}

// New creates a new Linter instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Linter {
	return &linter{
		options: options,
		storage: storage,
	}
}
