package postgres_test

import (
	"context"
	"testing"

	"corpus/pkg/domain"
	"corpus/pkg/storage"

	"github.com/stretchr/testify/require"
)

func pendingReport(docID domain.DocumentID, checksum string) domain.Report {
	return domain.Report{
		DocumentID: docID,
		Checksum:   checksum,
		Status:     domain.ReportStatusPending,
	}
}

func TestPgSQL_StoreReports(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	doc, _, err := pgSQL.UpsertDocument(ctx, testDoc("go/r1.md", "r1"))
	require.NoError(t, err)

	t.Run("store single report", func(t *testing.T) {
		res, err := pgSQL.StoreReports(ctx, pendingReport(doc.ID, "r1"))
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, doc.ID, res[0].DocumentID)
		require.Equal(t, domain.ReportStatusPending, res[0].Status)
	})

	t.Run("store empty reports", func(t *testing.T) {
		res, err := pgSQL.StoreReports(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_UpdatePendingReportsByChecksum(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	docA, _, err := pgSQL.UpsertDocument(ctx, testDoc("go/a.md", "shared"))
	require.NoError(t, err)
	docB, _, err := pgSQL.UpsertDocument(ctx, testDoc("go/b.md", "shared"))
	require.NoError(t, err)
	docC, _, err := pgSQL.UpsertDocument(ctx, testDoc("go/c.md", "other"))
	require.NoError(t, err)

	// two pending reports share a checksum, a third has its own
	_, err = pgSQL.StoreReports(ctx,
		pendingReport(docA.ID, "shared"),
		pendingReport(docB.ID, "shared"),
		pendingReport(docC.ID, "other"))
	require.NoError(t, err)

	count, err := pgSQL.PendingReportCountByChecksum(ctx, "shared")
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	findings := []domain.Finding{{
		Rule:     "internal-links",
		Severity: domain.SeverityError,
		Line:     4,
		Message:  "target does not exist",
	}}
	err = pgSQL.UpdatePendingReportsByChecksum(ctx, "shared", storage.ReportUpdates{
		Status:   domain.ReportStatusCompleted,
		Findings: &findings,
	})
	require.NoError(t, err)

	// both sharing reports are completed with findings and one attempt
	for _, id := range []domain.DocumentID{docA.ID, docB.ID} {
		rep, err := pgSQL.LatestReportByDocument(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, rep)
		require.Equal(t, domain.ReportStatusCompleted, rep.Status)
		require.Len(t, rep.Findings, 1)
		require.Equal(t, "internal-links", rep.Findings[0].Rule)
		require.EqualValues(t, 1, rep.Attempts)
	}

	// the other checksum stays pending
	rep, err := pgSQL.LatestReportByDocument(ctx, docC.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ReportStatusPending, rep.Status)

	count, err = pgSQL.PendingReportCountByChecksum(ctx, "shared")
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestPgSQL_UpdatePendingReports_FailureKeepsRetrying(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	doc, _, err := pgSQL.UpsertDocument(ctx, testDoc("go/flaky.md", "flaky"))
	require.NoError(t, err)
	_, err = pgSQL.StoreReports(ctx, pendingReport(doc.ID, "flaky"))
	require.NoError(t, err)

	boom := "read failed"
	fail := storage.ReportUpdates{
		Status:      domain.ReportStatusFailed,
		LastError:   &boom,
		MaxAttempts: 3,
	}

	// first two failures stay pending so the job can retry
	for range 2 {
		require.NoError(t, pgSQL.UpdatePendingReportsByChecksum(ctx, "flaky", fail))

		rep, err := pgSQL.LatestReportByDocument(ctx, doc.ID)
		require.NoError(t, err)
		require.Equal(t, domain.ReportStatusPending, rep.Status)
		require.Equal(t, "read failed", rep.LastError)
	}

	// the third failure reaches MaxAttempts and the report fails for good
	require.NoError(t, pgSQL.UpdatePendingReportsByChecksum(ctx, "flaky", fail))

	rep, err := pgSQL.LatestReportByDocument(ctx, doc.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ReportStatusFailed, rep.Status)
	require.EqualValues(t, 3, rep.Attempts)
}

func TestPgSQL_UpdateReportByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	doc, _, err := pgSQL.UpsertDocument(ctx, testDoc("go/single.md", "single"))
	require.NoError(t, err)
	stored, err := pgSQL.StoreReports(ctx, pendingReport(doc.ID, "single"))
	require.NoError(t, err)

	findings := []domain.Finding{}
	updated, err := pgSQL.UpdateReportByID(ctx, stored[0].ID, storage.ReportUpdates{
		Status:   domain.ReportStatusCompleted,
		Findings: &findings,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, domain.ReportStatusCompleted, updated.Status)
	require.EqualValues(t, 1, updated.Attempts)
}

func TestPgSQL_LastCompletedReportByChecksum(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	doc, _, err := pgSQL.UpsertDocument(ctx, testDoc("go/cache.md", "cached"))
	require.NoError(t, err)

	// no completed report yet
	rep, err := pgSQL.LastCompletedReportByChecksum(ctx, "cached")
	require.NoError(t, err)
	require.Nil(t, rep)

	stored, err := pgSQL.StoreReports(ctx, pendingReport(doc.ID, "cached"))
	require.NoError(t, err)

	findings := []domain.Finding{{Rule: "headings", Severity: domain.SeverityWarning, Message: "missing H1"}}
	_, err = pgSQL.UpdateReportByID(ctx, stored[0].ID, storage.ReportUpdates{
		Status:   domain.ReportStatusCompleted,
		Findings: &findings,
	})
	require.NoError(t, err)

	rep, err = pgSQL.LastCompletedReportByChecksum(ctx, "cached")
	require.NoError(t, err)
	require.NotNil(t, rep)
	require.Equal(t, stored[0].ID, rep.ID)
	require.Len(t, rep.Findings, 1)
}

func TestPgSQL_DeleteReportsByDocument(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	doc, _, err := pgSQL.UpsertDocument(ctx, testDoc("go/gone.md", "gone"))
	require.NoError(t, err)
	_, err = pgSQL.StoreReports(ctx, pendingReport(doc.ID, "gone"), pendingReport(doc.ID, "gone"))
	require.NoError(t, err)

	require.NoError(t, pgSQL.DeleteReportsByDocument(ctx, doc.ID))

	rep, err := pgSQL.LatestReportByDocument(ctx, doc.ID)
	require.NoError(t, err)
	require.Nil(t, rep)

	count, err := pgSQL.PendingReportCountByChecksum(ctx, "gone")
	require.NoError(t, err)
	require.Zero(t, count)
}
