package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"corpus/pkg/domain"
)

const (
	questionsTable = "questions"
)

// ReplaceQuestions swaps a document's questions for the provided set.
// Questions are derived data, so they are hard-deleted rather than
// soft-deleted.
func (p *PgSQL) ReplaceQuestions(ctx context.Context, docID domain.DocumentID, questions ...domain.Question) error {
	if _, err := p.Builder.Delete(questionsTable).
		Where(goqu.I("document_id").Eq(uuid.UUID(docID))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete questions in pg: %w", err)
	}

	if len(questions) == 0 {
		return nil
	}

	rows := make([]PgQuestion, len(questions))
	for i := range questions {
		rows[i].FromDomain(questions[i])
		rows[i].DocumentID = uuid.UUID(docID)
	}

	if _, err := p.Builder.Insert(questionsTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store questions into pg: %w", err)
	}

	return nil
}

// Questions returns questions of live documents ordered by document path and
// position, optionally filtered by topic.
func (p *PgSQL) Questions(ctx context.Context, topic string) ([]domain.Question, error) {
	w := []goqu.Expression{
		goqu.I("d.deleted_at").IsNull(),
	}
	if topic != "" {
		w = append(w, goqu.I("q.topic").Eq(topic))
	}

	var rows []PgQuestion
	if err := p.Builder.From(goqu.T(questionsTable).As("q")).
		Select("q.id", "q.document_id", "q.text", "q.topic", "q.position", "q.created_at").
		Join(goqu.T(documentsTable).As("d"), goqu.On(goqu.I("q.document_id").Eq(goqu.I("d.id")))).
		Where(w...).
		Order(goqu.I("d.path").Asc(), goqu.I("q.position").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch questions from pg: %w", err)
	}

	out := make([]domain.Question, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}
