package v1handler

import (
	"net/http"
	"strconv"

	"corpus/pkg/domain"
	"corpus/pkg/serrors"
)

// documentList is the paginated response of ListDocuments.
type documentList struct {
	Items      []domain.Document `json:"items"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

// ListDocuments returns a page of documents, optionally filtered by topic and
// kind. Pagination uses an opaque cursor returned by the previous page.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := uint(DefaultLimit)
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || n == 0 {
			writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid limit %q", raw))

			return
		}
		limit = uint(n)
		if limit > MaxLimit {
			limit = MaxLimit
		}
	}

	docs, next, err := h.deps.Linter.Documents(r.Context(),
		q.Get("topic"),
		domain.DocumentKind(q.Get("kind")),
		q.Get("cursor"),
		limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if docs == nil {
		docs = []domain.Document{}
	}
	writeJSON(w, http.StatusOK, documentList{Items: docs, NextCursor: next})
}

// GetDocument returns a single document with its outline.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := documentID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	doc, err := h.deps.Linter.Document(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// GetReport returns the latest lint report of a document.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := documentID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	report, err := h.deps.Linter.Report(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, report)
}

// LintDocument schedules a fresh lint run for the document's current revision
// and returns the new report, which may already be completed when a cached
// result for the same content exists.
func (h *Handler) LintDocument(w http.ResponseWriter, r *http.Request) {
	id, err := documentID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	report, err := h.deps.Linter.Relint(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusAccepted, report)
}

// DeleteDocument soft-deletes a document together with its reports and
// questions.
func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := documentID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Linter.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
