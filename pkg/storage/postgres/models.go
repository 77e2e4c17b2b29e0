package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"corpus/pkg/domain"
)

type PgDocument struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert,skipupdate"`

	Path     string          `db:"path"`
	Title    string          `db:"title"`
	Kind     string          `db:"kind"`
	Topics   json.RawMessage `db:"topics"`
	Checksum string          `db:"checksum"`
	Outline  json.RawMessage `db:"outline"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert,skipupdate"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert,skipupdate"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert,skipupdate"`
}

func (p *PgDocument) ToDomain() (*domain.Document, error) {
	var topics []string
	if len(p.Topics) > 0 {
		if err := json.Unmarshal(p.Topics, &topics); err != nil {
			return nil, fmt.Errorf("could not unmarshal document topics: %w", err)
		}
	}
	var outline domain.Outline
	if len(p.Outline) > 0 {
		if err := json.Unmarshal(p.Outline, &outline); err != nil {
			return nil, fmt.Errorf("could not unmarshal document outline: %w", err)
		}
	}

	return &domain.Document{
		ID:        domain.DocumentID(p.ID),
		Path:      p.Path,
		Title:     p.Title,
		Kind:      domain.DocumentKind(p.Kind),
		Topics:    topics,
		Checksum:  p.Checksum,
		Outline:   outline,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgDocument) FromDomain(doc domain.Document) error {
	topics, err := json.Marshal(doc.Topics)
	if err != nil {
		return fmt.Errorf("could not marshal document topics: %w", err)
	}
	outline, err := json.Marshal(doc.Outline)
	if err != nil {
		return fmt.Errorf("could not marshal document outline: %w", err)
	}

	*p = PgDocument{
		ID:       uuid.UUID(doc.ID),
		Path:     doc.Path,
		Title:    doc.Title,
		Kind:     string(doc.Kind),
		Topics:   topics,
		Checksum: doc.Checksum,
		Outline:  outline,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  doc.UpdatedAt,
			Valid: !doc.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  doc.DeletedAt,
			Valid: !doc.DeletedAt.IsZero(),
		},
	}

	return nil
}

type PgReport struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	DocumentID uuid.UUID `db:"document_id"`

	Checksum string          `db:"checksum"`
	Status   string          `db:"status"`
	Findings json.RawMessage `db:"findings" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgReport) ToDomain() (*domain.Report, error) {
	var findings []domain.Finding
	if len(p.Findings) > 0 {
		if err := json.Unmarshal(p.Findings, &findings); err != nil {
			return nil, fmt.Errorf("could not unmarshal report findings: %w", err)
		}
	}

	return &domain.Report{
		ID:         domain.ReportID(p.ID),
		DocumentID: domain.DocumentID(p.DocumentID),
		Checksum:   p.Checksum,
		Status:     domain.ReportStatus(p.Status),
		Findings:   findings,
		Attempts:   p.Attempts,
		LastError:  p.LastError.String,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
		DeletedAt:  p.DeletedAt.Time,
	}, nil
}

func (p *PgReport) FromDomain(report domain.Report) error {
	findings, err := json.Marshal(report.Findings)
	if err != nil {
		return fmt.Errorf("could not marshal report findings: %w", err)
	}

	*p = PgReport{
		ID:         uuid.UUID(report.ID),
		DocumentID: uuid.UUID(report.DocumentID),
		Checksum:   report.Checksum,
		Status:     string(report.Status),
		Findings:   findings,
		Attempts:   report.Attempts,
		LastError: sql.NullString{
			String: report.LastError,
			Valid:  report.LastError != "",
		},
		CreatedAt: report.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  report.UpdatedAt,
			Valid: !report.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  report.DeletedAt,
			Valid: !report.DeletedAt.IsZero(),
		},
	}

	return nil
}

func domainReportsToPg(reports []domain.Report) ([]PgReport, error) {
	out := make([]PgReport, len(reports))
	for i := range out {
		if err := out[i].FromDomain(reports[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgReportsToDomain(reports []PgReport) ([]domain.Report, error) {
	out := make([]domain.Report, 0, len(reports))
	for _, report := range reports {
		d, err := report.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgQuestion struct {
	ID         uuid.UUID `db:"id" goqu:"skipinsert"`
	DocumentID uuid.UUID `db:"document_id"`

	Text     string `db:"text"`
	Topic    string `db:"topic"`
	Position int    `db:"position"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgQuestion) ToDomain() *domain.Question {
	return &domain.Question{
		ID:         domain.QuestionID(p.ID),
		DocumentID: domain.DocumentID(p.DocumentID),
		Text:       p.Text,
		Topic:      p.Topic,
		Position:   p.Position,
		CreatedAt:  p.CreatedAt,
	}
}

func (p *PgQuestion) FromDomain(q domain.Question) {
	*p = PgQuestion{
		ID:         uuid.UUID(q.ID),
		DocumentID: uuid.UUID(q.DocumentID),
		Text:       q.Text,
		Topic:      q.Topic,
		Position:   q.Position,
		CreatedAt:  q.CreatedAt,
	}
}

func pgDocumentsToDomain(docs []PgDocument) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(docs))
	for _, doc := range docs {
		d, err := doc.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
