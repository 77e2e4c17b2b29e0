package storage

import (
	"context"

	"corpus/pkg/domain"
)

// ReportUpdates describes a set of optional fields that can be applied to an
// existing report during an update. Only non-nil fields will be updated.
type ReportUpdates struct {
	// Status is the new status to set for the report.
	Status domain.ReportStatus
	// Findings, when provided, replaces the stored findings. An empty non-nil
	// slice records a clean run.
	Findings *[]domain.Finding
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// MaxAttempts, when provided alongside a Failed status, ensures that status
	// is only updated to Failed if the current attempts after increment would
	// exceed this threshold. A value <= 0 disables this guard.
	MaxAttempts int
}

// ReportStorage defines CRUD and query operations related to lint reports.
type ReportStorage interface {
	// StoreReports inserts one or more reports and returns the stored rows as
	// they exist in the database (including generated fields).
	StoreReports(ctx context.Context, reports ...domain.Report) ([]domain.Report, error)
	// UpdatePendingReportsByChecksum updates all pending reports for the given
	// checksum using the provided field set.
	// Notes:
	// - Attempts is incremented by 1 and updated_at is set automatically.
	// - If Status is Failed and MaxAttempts > 0, status is only set to Failed
	//   when the attempts after increment would exceed MaxAttempts; otherwise
	//   status remains unchanged (i.e., stays Pending).
	UpdatePendingReportsByChecksum(ctx context.Context, checksum string, updates ReportUpdates) error
	// PendingReportCountByChecksum returns the number of pending reports for the
	// given checksum. Soft-deleted records are excluded from the count.
	PendingReportCountByChecksum(ctx context.Context, checksum string) (int64, error)
	// UpdateReportByID updates a single report identified by its ID and returns
	// the updated row. The update ignores soft-deleted rows and sets updated_at
	// automatically. Only provided fields are changed.
	UpdateReportByID(ctx context.Context, id domain.ReportID, updates ReportUpdates) (*domain.Report, error)
	// LatestReportByDocument returns the most recent live report for a document.
	// Returns nil when the document has never been linted.
	LatestReportByDocument(ctx context.Context, docID domain.DocumentID) (*domain.Report, error)
	// LastCompletedReportByChecksum returns the most recent completed report for
	// a given checksum across all documents. Returns nil when none exists.
	LastCompletedReportByChecksum(ctx context.Context, checksum string) (*domain.Report, error)
	// DeleteReportsByDocument soft-deletes all reports belonging to a document.
	DeleteReportsByDocument(ctx context.Context, docID domain.DocumentID) error
}
