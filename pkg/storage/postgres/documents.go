package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"corpus/pkg/domain"
	"corpus/pkg/storage"
)

const (
	documentsTable = "documents"
)

// UpsertDocument inserts the document or updates the live row with the same
// path. The changed flag is false when the stored checksum already matches the
// incoming one, which lets callers skip re-linting unchanged content.
func (p *PgSQL) UpsertDocument(ctx context.Context, doc domain.Document) (*domain.Document, bool, error) {
	existing, err := p.DocumentByPath(ctx, doc.Path)
	if err != nil {
		return nil, false, err
	}

	var pgDoc PgDocument
	if err := pgDoc.FromDomain(doc); err != nil {
		return nil, false, err
	}

	if existing == nil {
		var row PgDocument
		found, err := p.Builder.Insert(documentsTable).
			Rows(pgDoc).
			Returning(&PgDocument{}).
			Executor().ScanStructContext(ctx, &row)
		if err != nil {
			return nil, false, fmt.Errorf("could not store document into pg: %w", err)
		}
		if !found {
			return nil, false, fmt.Errorf("insert of document %q returned no row", doc.Path)
		}

		stored, err := row.ToDomain()

		return stored, true, err
	}

	changed := existing.Checksum != doc.Checksum

	var row PgDocument
	found, err := p.Builder.Update(documentsTable).
		Set(goqu.Record{
			"title":      pgDoc.Title,
			"kind":       pgDoc.Kind,
			"topics":     []byte(pgDoc.Topics),
			"checksum":   pgDoc.Checksum,
			"outline":    []byte(pgDoc.Outline),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(existing.ID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgDocument{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, false, fmt.Errorf("could not update document in pg: %w", err)
	}
	if !found {
		return nil, false, fmt.Errorf("update of document %q returned no row", doc.Path)
	}

	stored, err := row.ToDomain()

	return stored, changed, err
}

// DocumentByID returns a document by its ID, excluding soft-deleted rows.
func (p *PgSQL) DocumentByID(ctx context.Context, id domain.DocumentID) (*domain.Document, error) {
	var row PgDocument
	found, err := p.Builder.From(documentsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch document by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DocumentByPath returns a document by its corpus-relative path, excluding
// soft-deleted rows.
func (p *PgSQL) DocumentByPath(ctx context.Context, path string) (*domain.Document, error) {
	var row PgDocument
	found, err := p.Builder.From(documentsTable).
		Where(
			goqu.I("path").Eq(path),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch document by path: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Documents returns a page of documents narrowed by filter, ordered by
// created_at DESC, id DESC, with cursor pagination on created_at.
func (p *PgSQL) Documents(ctx context.Context,
	filter storage.DocumentFilter,
	cursor time.Time,
	limit uint) (storage.DocumentPage, error) {
	w := []goqu.Expression{
		goqu.I("deleted_at").IsNull(),
	}
	if filter.Kind != "" {
		w = append(w, goqu.I("kind").Eq(string(filter.Kind)))
	}
	if filter.Topic != "" {
		topicJSON, err := json.Marshal([]string{filter.Topic})
		if err != nil {
			return storage.DocumentPage{}, fmt.Errorf("could not marshal topic filter: %w", err)
		}
		w = append(w, goqu.L("topics @> ?::jsonb", string(topicJSON)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(documentsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgDocument
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.DocumentPage{}, fmt.Errorf("could not fetch documents from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgDocumentsToDomain(rows)
	if err != nil {
		return storage.DocumentPage{}, err
	}

	return storage.DocumentPage{
		Documents:  domainRows,
		NextCursor: nextCursor,
	}, nil
}

// DocumentPaths returns the paths of all live documents.
func (p *PgSQL) DocumentPaths(ctx context.Context) ([]string, error) {
	var paths []string
	if err := p.Builder.From(documentsTable).
		Select("path").
		Where(goqu.I("deleted_at").IsNull()).
		Executor().ScanValsContext(ctx, &paths); err != nil {
		return nil, fmt.Errorf("could not fetch document paths: %w", err)
	}

	return paths, nil
}

// DeleteDocument performs a soft delete by setting deleted_at for the given
// document ID, returning the deleted record.
func (p *PgSQL) DeleteDocument(ctx context.Context, id domain.DocumentID) (*domain.Document, error) {
	var row PgDocument
	found, err := p.Builder.Update(documentsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgDocument{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete document in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteDocumentByPath performs a soft delete by path, returning the deleted record.
func (p *PgSQL) DeleteDocumentByPath(ctx context.Context, path string) (*domain.Document, error) {
	var row PgDocument
	found, err := p.Builder.Update(documentsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("path").Eq(path),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgDocument{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete document by path in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Topics aggregates distinct topics across live documents with their counts.
func (p *PgSQL) Topics(ctx context.Context) ([]domain.Topic, error) {
	type topicRow struct {
		Name      string `db:"name"`
		Documents int64  `db:"documents"`
	}

	var rows []topicRow
	if err := p.Builder.From(
		goqu.L("? AS d, jsonb_array_elements_text(d.topics) AS t(topic)", goqu.I(documentsTable)),
	).
		Select(goqu.L("t.topic").As("name"), goqu.COUNT(goqu.Star()).As("documents")).
		Where(goqu.I("d.deleted_at").IsNull()).
		GroupBy(goqu.L("t.topic")).
		Order(goqu.L("t.topic").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch topics from pg: %w", err)
	}

	out := make([]domain.Topic, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Topic{Name: r.Name, Documents: r.Documents})
	}

	return out, nil
}
