package storage

import (
	"context"
	"time"

	"corpus/pkg/domain"
)

// DocumentFilter narrows document listing.
type DocumentFilter struct {
	// Topic, when non-empty, restricts results to documents carrying the topic.
	Topic string
	// Kind, when non-empty, restricts results to documents of the given kind.
	Kind domain.DocumentKind
}

// DocumentPage groups a page of documents together with an optional
// NextCursor used for pagination.
type DocumentPage struct {
	// Documents contains the current page of document records.
	Documents []domain.Document
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// DocumentStorage defines CRUD and query operations related to corpus
// documents. Implementations should ensure upserts are idempotent and handle
// soft-deletes where applicable.
type DocumentStorage interface {
	// UpsertDocument inserts the document or, when a live row with the same path
	// exists, updates its metadata, checksum and outline. The stored row is
	// returned along with changed=false when the incoming checksum matches the
	// stored one (content unchanged).
	UpsertDocument(ctx context.Context, doc domain.Document) (stored *domain.Document, changed bool, err error)
	// DocumentByID fetches a document by ID, excluding soft-deleted rows.
	// Returns nil when not found.
	DocumentByID(ctx context.Context, id domain.DocumentID) (*domain.Document, error)
	// DocumentByPath fetches a document by its corpus-relative path, excluding
	// soft-deleted rows. Returns nil when not found.
	DocumentByPath(ctx context.Context, path string) (*domain.Document, error)
	// Documents returns a page of documents created before the optional cursor
	// time, limited by limit and narrowed by filter. Results are ordered newest
	// first.
	Documents(ctx context.Context, filter DocumentFilter, cursor time.Time, limit uint) (DocumentPage, error)
	// DocumentPaths returns the paths of all live documents. Used by full syncs
	// to detect removals.
	DocumentPaths(ctx context.Context) ([]string, error)
	// DeleteDocument performs a soft delete by ID and returns the deleted
	// document, or nil if it was not found.
	DeleteDocument(ctx context.Context, id domain.DocumentID) (*domain.Document, error)
	// DeleteDocumentByPath performs a soft delete by path and returns the
	// deleted document, or nil if it was not found.
	DeleteDocumentByPath(ctx context.Context, path string) (*domain.Document, error)
	// Topics returns the distinct topics across live documents with their
	// document counts, ordered by name.
	Topics(ctx context.Context) ([]domain.Topic, error)
}
