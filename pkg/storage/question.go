package storage

import (
	"context"

	"corpus/pkg/domain"
)

// QuestionStorage defines operations on interview questions. Questions are
// derived data: they are replaced wholesale whenever their source document is
// re-ingested.
type QuestionStorage interface {
	// ReplaceQuestions deletes all questions of the given document and stores
	// the provided ones in their place. Passing no questions just clears.
	ReplaceQuestions(ctx context.Context, docID domain.DocumentID, questions ...domain.Question) error
	// Questions returns questions across live interview documents, optionally
	// filtered by topic, ordered by document path and position.
	Questions(ctx context.Context, topic string) ([]domain.Question, error)
}
