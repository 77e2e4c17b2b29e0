package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuestionID uniquely identifies an interview question.
type QuestionID uuid.UUID

func (id QuestionID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID in canonical UUID form.
func (id QuestionID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(id).String()), nil
}

// UnmarshalText parses a canonical UUID string.
func (id *QuestionID) UnmarshalText(text []byte) error {
	u, err := uuid.ParseBytes(text)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = QuestionID(u)

	return nil
}

// Question is a single interview question extracted from an interview
// document during ingestion. Questions are replaced wholesale whenever their
// source document is re-ingested.
type Question struct {
	// ID is the unique identifier of the question.
	ID QuestionID `json:"id"`
	// DocumentID is the interview document the question was extracted from.
	DocumentID DocumentID `json:"documentId"`

	// Text is the question itself.
	Text string `json:"text"`
	// Topic is the section the question appeared under, empty when the source
	// document has no section headings.
	Topic string `json:"topic,omitempty"`
	// Position is the 0-based order of the question within its document.
	Position int `json:"position"`

	// CreatedAt is when the question row was stored.
	CreatedAt time.Time `json:"createdAt"`
}
