package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"corpus/pkg/domain"
	"corpus/pkg/storage"
)

const (
	reportsTable = "reports"
)

func (p *PgSQL) StoreReports(ctx context.Context, reports ...domain.Report) ([]domain.Report, error) {
	if len(reports) == 0 {
		return nil, nil
	}

	pgReports, err := domainReportsToPg(reports)
	if err != nil {
		return nil, err
	}

	var result []PgReport
	if err := p.Builder.Insert(reportsTable).
		Rows(pgReports).
		Returning(&PgReport{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store reports into pg: %w", err)
	}

	return pgReportsToDomain(result)
}

// updateRecord translates a ReportUpdates value into a goqu record. Attempts
// is always incremented and updated_at refreshed.
func updateRecord(updates storage.ReportUpdates) (goqu.Record, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
		"status":     updates.Status,
	}
	if updates.Findings != nil {
		b, err := json.Marshal(*updates.Findings)
		if err != nil {
			return nil, fmt.Errorf("could not marshal findings: %w", err)
		}

		rec["findings"] = b
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	return rec, nil
}

// UpdatePendingReportsByChecksum updates all pending reports for the given
// checksum with provided fields. Only non-nil fields from updates are set.
// Attempts is incremented by 1 and updated_at is set. When marking reports
// failed with MaxAttempts > 0, reports below the attempts threshold stay
// pending so River can retry them.
func (p *PgSQL) UpdatePendingReportsByChecksum(ctx context.Context, checksum string, updates storage.ReportUpdates) error {
	rec, err := updateRecord(updates)
	if err != nil {
		return err
	}

	if updates.Status == domain.ReportStatusFailed && updates.MaxAttempts > 0 {
		rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
			updates.MaxAttempts, string(domain.ReportStatusFailed))
	}

	_, err = p.Builder.Update(reportsTable).
		Set(rec).Where(
		goqu.I("checksum").Eq(checksum),
		goqu.I("status").Eq(string(domain.ReportStatusPending)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update pending reports by checksum in pg: %w", err)
	}

	return nil
}

// PendingReportCountByChecksum returns the number of live pending reports for
// the given checksum.
func (p *PgSQL) PendingReportCountByChecksum(ctx context.Context, checksum string) (int64, error) {
	count, err := p.Builder.From(reportsTable).
		Where(
			goqu.I("checksum").Eq(checksum),
			goqu.I("status").Eq(string(domain.ReportStatusPending)),
			goqu.I("deleted_at").IsNull(),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending reports by checksum: %w", err)
	}

	return count, nil
}

// UpdateReportByID updates a single report by ID and returns the updated row.
func (p *PgSQL) UpdateReportByID(ctx context.Context,
	id domain.ReportID,
	updates storage.ReportUpdates) (*domain.Report, error) {
	rec, err := updateRecord(updates)
	if err != nil {
		return nil, err
	}

	var row PgReport
	found, err := p.Builder.Update(reportsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgReport{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update report by id in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LatestReportByDocument returns the most recent live report for a document.
func (p *PgSQL) LatestReportByDocument(ctx context.Context, docID domain.DocumentID) (*domain.Report, error) {
	var row PgReport
	found, err := p.Builder.From(reportsTable).
		Where(
			goqu.I("document_id").Eq(uuid.UUID(docID)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch latest report by document: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LastCompletedReportByChecksum returns the most recent completed report for a
// given checksum across all documents.
func (p *PgSQL) LastCompletedReportByChecksum(ctx context.Context, checksum string) (*domain.Report, error) {
	var row PgReport
	found, err := p.Builder.From(reportsTable).
		Where(
			goqu.I("checksum").Eq(checksum),
			goqu.I("status").Eq(string(domain.ReportStatusCompleted)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("updated_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch last completed report by checksum: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteReportsByDocument soft-deletes all live reports of a document.
func (p *PgSQL) DeleteReportsByDocument(ctx context.Context, docID domain.DocumentID) error {
	_, err := p.Builder.Update(reportsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("document_id").Eq(uuid.UUID(docID)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete reports by document in pg: %w", err)
	}

	return nil
}
