package linter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mockstorage "corpus/pkg/storage/mock"

	"go.uber.org/mock/gomock"

	"corpus/internal/linter"
	"corpus/pkg/domain"
	"corpus/pkg/serrors"
	"corpus/pkg/storage"
)

const checksum = "0f1e2d3c4b5a69788796a5b4c3d2e1f00f1e2d3c4b5a69788796a5b4c3d2e1f0"

func newTestLinter(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, linter.Linter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	l := linter.New(st, linter.Options{MaxAttempts: 3, ResultCacheTTL: time.Hour})

	return ctrl, st, l
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			// provide a tx mock that implements AllStorage
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func testDocument() domain.Document {
	return domain.Document{
		Path:     "go/concurrency.md",
		Title:    "Concurrency",
		Kind:     domain.KindNote,
		Checksum: checksum,
	}
}

func TestLinter_Enqueue_JobAdded(t *testing.T) {
	ctrl, st, l := newTestLinter(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreReports(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, reports ...domain.Report) ([]domain.Report, error) {
				if len(reports) != 1 {
					t.Fatalf("expected one report input")
				}

				return reports, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	report, err := l.Enqueue(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report == nil {
		t.Fatalf("expected report, got nil")
	}
	if report.Checksum != checksum {
		t.Fatalf("expected checksum %q got %q", checksum, report.Checksum)
	}
	if report.Status != domain.ReportStatusPending {
		t.Fatalf("expected status PENDING, got %s", report.Status)
	}
}

func TestLinter_Enqueue_ReusesCompletedReport(t *testing.T) {
	ctrl, st, l := newTestLinter(t)

	completed := domain.Report{
		Status:   domain.ReportStatusCompleted,
		Findings: []domain.Finding{{Rule: "links", Severity: domain.SeverityError, Message: "missing file"}},
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreReports(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, reports ...domain.Report) ([]domain.Report, error) {
				return reports, nil
			},
		)
		// Job not added (already exists)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		// A completed report exists for the same content
		tx.EXPECT().LastCompletedReportByChecksum(gomock.Any(), checksum).Return(&completed, nil)
		tx.EXPECT().UpdateReportByID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.ReportID, updates storage.ReportUpdates) (*domain.Report, error) {
				if updates.Status != domain.ReportStatusCompleted || updates.Findings == nil {
					t.Fatalf("expected completed update with findings")
				}
				res := domain.Report{Status: domain.ReportStatusCompleted, Findings: *updates.Findings}

				return &res, nil
			},
		)
	})

	report, err := l.Enqueue(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Status != domain.ReportStatusCompleted {
		t.Fatalf("expected status COMPLETED, got %s", report.Status)
	}
	if len(report.Findings) != 1 {
		t.Fatalf("expected reused findings, got %+v", report.Findings)
	}
}

func TestLinter_Enqueue_PendingWhenJobExistsWithoutResult(t *testing.T) {
	ctrl, st, l := newTestLinter(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreReports(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, reports ...domain.Report) ([]domain.Report, error) {
				return reports, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedReportByChecksum(gomock.Any(), checksum).Return(nil, nil)
	})

	report, err := l.Enqueue(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Status != domain.ReportStatusPending {
		t.Fatalf("expected status PENDING, got %s", report.Status)
	}
}

func TestLinter_Enqueue_PropagatesErrors(t *testing.T) {
	ctrl, st, l := newTestLinter(t)

	// error from StoreReports
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreReports(gomock.Any(), gomock.Any()).Return(nil, errors.New("store err"))
	})
	if _, err := l.Enqueue(context.Background(), testDocument()); err == nil {
		t.Fatalf("expected error from StoreReports")
	}

	// error from AddJob
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreReports(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, reports ...domain.Report) ([]domain.Report, error) { return reports, nil },
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("add err"))
	})
	if _, err := l.Enqueue(context.Background(), testDocument()); err == nil {
		t.Fatalf("expected error from AddJob")
	}

	// error from LastCompletedReportByChecksum
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreReports(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, reports ...domain.Report) ([]domain.Report, error) { return reports, nil },
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedReportByChecksum(gomock.Any(), checksum).Return(nil, errors.New("last err"))
	})
	if _, err := l.Enqueue(context.Background(), testDocument()); err == nil {
		t.Fatalf("expected error from LastCompletedReportByChecksum")
	}
}

func TestLinter_Relint(t *testing.T) {
	ctrl, st, l := newTestLinter(t)
	id := domain.DocumentID{}

	// document exists and a job is added
	st.EXPECT().DocumentByID(gomock.Any(), id).Return(func() *domain.Document {
		d := testDocument()

		return &d
	}(), nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreReports(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, reports ...domain.Report) ([]domain.Report, error) { return reports, nil },
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})
	if _, err := l.Relint(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// document missing
	st.EXPECT().DocumentByID(gomock.Any(), id).Return(nil, nil)
	_, err := l.Relint(context.Background(), id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLinter_Documents_SuccessAndPagination(t *testing.T) {
	_, st, l := newTestLinter(t)

	// sub-second precision must survive the cursor round trip, otherwise
	// rows created within the same second fall between pages
	cursorTime := time.Now().Add(-time.Hour).UTC().Truncate(time.Second).Add(900 * time.Millisecond)
	cursor := cursorTime.Format(time.RFC3339Nano)

	nextTime := cursorTime.Add(-300 * time.Millisecond)
	page := storage.DocumentPage{
		Documents:  []domain.Document{{Path: "go/slices.md"}},
		NextCursor: &nextTime,
	}

	st.EXPECT().Documents(gomock.Any(),
		storage.DocumentFilter{Topic: "go", Kind: domain.KindNote},
		cursorTime, uint(10)).Return(page, nil)

	docs, next, err := l.Documents(context.Background(), "go", domain.KindNote, cursor, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 || docs[0].Path != "go/slices.md" {
		t.Fatalf("unexpected documents: %+v", docs)
	}
	if next != nextTime.Format(time.RFC3339Nano) {
		t.Fatalf("expected next cursor %q, got %q", nextTime.Format(time.RFC3339Nano), next)
	}

	got, err := time.Parse(time.RFC3339Nano, next)
	if err != nil || !got.Equal(nextTime) {
		t.Fatalf("cursor does not round-trip: got %v, err %v", got, err)
	}
}

func TestLinter_Documents_InvalidInput(t *testing.T) {
	_, _, l := newTestLinter(t)

	_, _, err := l.Documents(context.Background(), "", "", "not-a-time", 5)
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for cursor, got %v", err)
	}

	_, _, err = l.Documents(context.Background(), "", "essay", "", 5)
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for kind, got %v", err)
	}
}

func TestLinter_Report(t *testing.T) {
	_, st, l := newTestLinter(t)
	id := domain.DocumentID{}
	doc := testDocument()

	// found
	st.EXPECT().DocumentByID(gomock.Any(), id).Return(&doc, nil)
	st.EXPECT().LatestReportByDocument(gomock.Any(), id).Return(&domain.Report{Status: domain.ReportStatusCompleted}, nil)
	report, err := l.Report(context.Background(), id)
	if err != nil || report == nil || report.Status != domain.ReportStatusCompleted {
		t.Fatalf("unexpected: report=%+v err=%v", report, err)
	}

	// document missing
	st.EXPECT().DocumentByID(gomock.Any(), id).Return(nil, nil)
	_, err = l.Report(context.Background(), id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// never linted
	st.EXPECT().DocumentByID(gomock.Any(), id).Return(&doc, nil)
	st.EXPECT().LatestReportByDocument(gomock.Any(), id).Return(nil, nil)
	_, err = l.Report(context.Background(), id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing report, got %v", err)
	}
}

func TestLinter_Delete(t *testing.T) {
	ctrl, st, l := newTestLinter(t)
	id := domain.DocumentID{}
	doc := testDocument()

	// success: document, reports and questions are removed together
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteDocument(gomock.Any(), id).Return(&doc, nil)
		tx.EXPECT().DeleteReportsByDocument(gomock.Any(), id).Return(nil)
		tx.EXPECT().ReplaceQuestions(gomock.Any(), id).Return(nil)
	})
	if err := l.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// not found
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteDocument(gomock.Any(), id).Return(nil, nil)
	})
	err := l.Delete(context.Background(), id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
