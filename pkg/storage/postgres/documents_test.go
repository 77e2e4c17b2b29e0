package postgres_test

import (
	"context"
	"testing"
	"time"

	"corpus/pkg/domain"
	"corpus/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testDoc(path, checksum string, topics ...string) domain.Document {
	return domain.Document{
		Path:     path,
		Title:    "Test Document",
		Kind:     domain.KindNote,
		Topics:   topics,
		Checksum: checksum,
		Outline: domain.Outline{
			Headings: []domain.Heading{{Level: 1, Text: "Test Document", Anchor: "test-document", Line: 1}},
		},
	}
}

func TestPgSQL_UpsertDocument(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	// first upsert inserts
	stored, changed, err := pgSQL.UpsertDocument(ctx, testDoc("go/channels.md", "aaa", "go"))
	require.NoError(t, err)
	require.True(t, changed)
	require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
	require.Equal(t, "go/channels.md", stored.Path)
	require.Equal(t, []string{"go"}, stored.Topics)
	require.Len(t, stored.Outline.Headings, 1)

	// same checksum: update, not changed
	stored2, changed, err := pgSQL.UpsertDocument(ctx, testDoc("go/channels.md", "aaa", "go"))
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, stored.ID, stored2.ID)

	// new checksum: changed, same row
	stored3, changed, err := pgSQL.UpsertDocument(ctx, testDoc("go/channels.md", "bbb", "go"))
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, stored.ID, stored3.ID)
	require.Equal(t, "bbb", stored3.Checksum)
}

func TestPgSQL_DocumentByIDAndPath(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, _, err := pgSQL.UpsertDocument(ctx, testDoc("go/goroutines.md", "ccc", "go"))
	require.NoError(t, err)

	byID, err := pgSQL.DocumentByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, stored.Path, byID.Path)

	byPath, err := pgSQL.DocumentByPath(ctx, "go/goroutines.md")
	require.NoError(t, err)
	require.NotNil(t, byPath)
	require.Equal(t, stored.ID, byPath.ID)

	// unknown lookups return nil without error
	missing, err := pgSQL.DocumentByID(ctx, domain.DocumentID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)

	missing, err = pgSQL.DocumentByPath(ctx, "go/never-written.md")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_DeleteDocument(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, _, err := pgSQL.UpsertDocument(ctx, testDoc("go/delete-me.md", "ddd"))
	require.NoError(t, err)

	deleted, err := pgSQL.DeleteDocument(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, stored.ID, deleted.ID)

	// soft-deleted rows are invisible
	got, err := pgSQL.DocumentByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	// deleting again is a no-op
	deleted2, err := pgSQL.DeleteDocument(ctx, stored.ID)
	require.NoError(t, err)
	require.Nil(t, deleted2)

	// re-ingesting the same path creates a fresh row
	fresh, changed, err := pgSQL.UpsertDocument(ctx, testDoc("go/delete-me.md", "ddd"))
	require.NoError(t, err)
	require.True(t, changed)
	require.NotEqual(t, stored.ID, fresh.ID)
}

func TestPgSQL_DeleteDocumentByPath(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, _, err := pgSQL.UpsertDocument(ctx, testDoc("ts/types.md", "eee", "typescript"))
	require.NoError(t, err)

	deleted, err := pgSQL.DeleteDocumentByPath(ctx, "ts/types.md")
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, stored.ID, deleted.ID)

	// unknown path returns nil without error
	deleted2, err := pgSQL.DeleteDocumentByPath(ctx, "ts/types.md")
	require.NoError(t, err)
	require.Nil(t, deleted2)
}

func TestPgSQL_Documents_FilterAndPagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	paths := []string{"go/a.md", "go/b.md", "go/c.md", "ts/a.md", "ts/b.md"}
	stored := make([]*domain.Document, 0, len(paths))
	for i, p := range paths {
		doc := testDoc(p, p)
		doc.Topics = []string{p[:2]}
		if i >= 3 {
			doc.Kind = domain.KindInterview
		}
		d, _, err := pgSQL.UpsertDocument(ctx, doc)
		require.NoError(t, err)
		stored = append(stored, d)
	}

	// adjust created_at to be deterministic descending: last inserted is newest
	now := time.Now().UTC()
	for i, d := range stored {
		created := now.Add(-time.Duration(len(stored)-1-i) * time.Minute)
		_, err := pgSQL.DB.ExecContext(ctx, "UPDATE documents SET created_at = $1 WHERE id = $2", created, uuid.UUID(d.ID))
		require.NoError(t, err)
	}

	// topic filter
	page, err := pgSQL.Documents(ctx, storage.DocumentFilter{Topic: "go"}, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Documents, 3)
	require.Nil(t, page.NextCursor)

	// kind filter
	page, err = pgSQL.Documents(ctx, storage.DocumentFilter{Kind: domain.KindInterview}, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Documents, 2)

	// pagination, limit 2: 5 docs means 3 pages
	p1, err := pgSQL.Documents(ctx, storage.DocumentFilter{}, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, p1.Documents, 2)
	require.NotNil(t, p1.NextCursor)

	p2, err := pgSQL.Documents(ctx, storage.DocumentFilter{}, *p1.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p2.Documents, 2)
	require.NotNil(t, p2.NextCursor)

	p3, err := pgSQL.Documents(ctx, storage.DocumentFilter{}, *p2.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p3.Documents, 1)
	require.Nil(t, p3.NextCursor)
}

func TestPgSQL_Documents_SameSecondPagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	// bulk ingest lands many rows within the same wall-clock second, so the
	// cursor must keep its sub-second part through the string round trip
	base := time.Now().UTC().Truncate(time.Second)
	paths := []string{"go/a.md", "go/b.md", "go/c.md", "go/d.md"}
	for i, path := range paths {
		d, _, err := pgSQL.UpsertDocument(ctx, testDoc(path, path, "go"))
		require.NoError(t, err)

		created := base.Add(time.Duration(i) * 250 * time.Millisecond)
		_, err = pgSQL.DB.ExecContext(ctx, "UPDATE documents SET created_at = $1 WHERE id = $2", created, uuid.UUID(d.ID))
		require.NoError(t, err)
	}

	var seen []string
	cursor := ""
	for range paths {
		var cursorTime time.Time
		if cursor != "" {
			parsed, err := time.Parse(time.RFC3339Nano, cursor)
			require.NoError(t, err)
			cursorTime = parsed
		}

		page, err := pgSQL.Documents(ctx, storage.DocumentFilter{}, cursorTime, 1)
		require.NoError(t, err)
		require.Len(t, page.Documents, 1)
		seen = append(seen, page.Documents[0].Path)

		if page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor.Format(time.RFC3339Nano)
	}

	require.ElementsMatch(t, paths, seen)
}

func TestPgSQL_DocumentPaths(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	a, _, err := pgSQL.UpsertDocument(ctx, testDoc("go/live.md", "f1"))
	require.NoError(t, err)
	_, _, err = pgSQL.UpsertDocument(ctx, testDoc("go/also-live.md", "f2"))
	require.NoError(t, err)
	_, err = pgSQL.DeleteDocument(ctx, a.ID)
	require.NoError(t, err)

	paths, err := pgSQL.DocumentPaths(ctx)
	require.NoError(t, err)
	require.Contains(t, paths, "go/also-live.md")
	require.NotContains(t, paths, "go/live.md")
}

func TestPgSQL_Topics(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	_, _, err := pgSQL.UpsertDocument(ctx, testDoc("go/a.md", "t1", "go", "concurrency"))
	require.NoError(t, err)
	_, _, err = pgSQL.UpsertDocument(ctx, testDoc("go/b.md", "t2", "go"))
	require.NoError(t, err)
	gone, _, err := pgSQL.UpsertDocument(ctx, testDoc("rust/a.md", "t3", "rust"))
	require.NoError(t, err)
	_, err = pgSQL.DeleteDocument(ctx, gone.ID)
	require.NoError(t, err)

	topics, err := pgSQL.Topics(ctx)
	require.NoError(t, err)

	byName := map[string]int64{}
	for _, tp := range topics {
		byName[tp.Name] = tp.Documents
	}
	require.EqualValues(t, 2, byName["go"])
	require.EqualValues(t, 1, byName["concurrency"])
	// topics of deleted documents are not counted
	require.NotContains(t, byName, "rust")
}
