package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportID uniquely identifies a lint report.
type ReportID uuid.UUID

func (id ReportID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID in canonical UUID form.
func (id ReportID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(id).String()), nil
}

// UnmarshalText parses a canonical UUID string.
func (id *ReportID) UnmarshalText(text []byte) error {
	u, err := uuid.ParseBytes(text)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = ReportID(u)

	return nil
}

// ReportStatus represents the lifecycle state of a lint report.
type ReportStatus string

const (
	// ReportStatusPending indicates the lint job has been enqueued but not processed yet.
	ReportStatusPending ReportStatus = "PENDING"
	// ReportStatusCompleted indicates linting finished and findings are available.
	ReportStatusCompleted ReportStatus = "COMPLETED"
	// ReportStatusFailed indicates linting ended with an error; see LastError and Attempts.
	ReportStatusFailed ReportStatus = "FAILED"
)

// Severity ranks a finding.
type Severity string

const (
	// SeverityError marks a finding that violates a corpus invariant, such as a
	// broken internal link or a code fence that does not parse.
	SeverityError Severity = "ERROR"
	// SeverityWarning marks a finding worth fixing but not a hard violation.
	SeverityWarning Severity = "WARNING"
)

// Finding is a single lint result located in a document.
type Finding struct {
	// Rule names the lint rule that produced the finding.
	Rule string `json:"rule"`
	// Severity is ERROR or WARNING.
	Severity Severity `json:"severity"`
	// Line is the 1-based source line, 0 when the finding is document-wide.
	Line int `json:"line,omitempty"`
	// Message describes the problem in human terms.
	Message string `json:"message"`
}

// Report represents one lint run over a document revision.
type Report struct {
	// ID is the unique identifier of the report.
	ID ReportID `json:"id"`
	// DocumentID is the document this report belongs to.
	DocumentID DocumentID `json:"documentId"`

	// Checksum is the content revision the report covers.
	Checksum string `json:"checksum"`
	// Status is the current lifecycle state of the report.
	Status ReportStatus `json:"status"`
	// Findings are the lint results; empty on a clean completed run.
	Findings []Finding `json:"findings"`

	// Attempts is the number of times the worker has tried to produce this report.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent processing error, if any.
	LastError string `json:"-"`

	// CreatedAt is when the report was created (lint requested).
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the report last changed state.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the report was soft-deleted; zero means live.
	DeletedAt time.Time `json:"-"`
}

// Errors reports how many findings carry ERROR severity.
func (r Report) Errors() int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			n++
		}
	}

	return n
}
