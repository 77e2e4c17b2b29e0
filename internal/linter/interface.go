package linter

import (
	"context"

	"corpus/pkg/domain"
)

// Linter is the application service behind the API: it coordinates document
// queries, lint scheduling and report retrieval on top of the storage layer.
//
//go:generate mockgen -package mocklinter -source=interface.go -destination=mock/mocklinter.go *
type Linter interface {
	// Enqueue stores a pending report for the document revision and schedules a
	// background lint job, reusing a completed report for the same checksum
	// when one exists.
	Enqueue(ctx context.Context, doc domain.Document) (*domain.Report, error)
	// Relint re-schedules linting for an existing document by ID.
	Relint(ctx context.Context, id domain.DocumentID) (*domain.Report, error)
	// Documents returns a page of documents with cursor-based pagination. The
	// cursor is a nanosecond-precision RFC3339 timestamp string; the returned
	// string is the next
	// cursor, empty when there are no more results.
	Documents(ctx context.Context,
		topic string,
		kind domain.DocumentKind,
		cursor string,
		limit uint) ([]domain.Document, string, error)
	// Document fetches a single document by ID.
	Document(ctx context.Context, id domain.DocumentID) (*domain.Document, error)
	// Report fetches the latest lint report of a document.
	Report(ctx context.Context, id domain.DocumentID) (*domain.Report, error)
	// Delete soft-deletes a document together with its reports.
	Delete(ctx context.Context, id domain.DocumentID) error
	// Topics returns the corpus navigation structure: topic names with counts.
	Topics(ctx context.Context) ([]domain.Topic, error)
	// Questions returns interview questions, optionally filtered by topic.
	Questions(ctx context.Context, topic string) ([]domain.Question, error)
}
