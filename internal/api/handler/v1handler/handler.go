// Package v1handler implements the v1 REST API on top of the linter service.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"corpus/internal/linter"
	"corpus/pkg/domain"
	"corpus/pkg/logger"
	"corpus/pkg/serrors"
)

// DefaultLimit is the page size used when the client does not specify one.
const DefaultLimit = 20

// MaxLimit caps the page size a client may request.
const MaxLimit = 100

// Deps are the services the handlers operate on.
type Deps struct {
	Linter linter.Linter
}

// Handler serves the v1 API routes.
type Handler struct {
	deps Deps
}

// New creates a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers all v1 endpoints on the given router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/documents", h.ListDocuments)
	r.Get("/documents/{id}", h.GetDocument)
	r.Get("/documents/{id}/report", h.GetReport)
	r.Post("/documents/{id}/lint", h.LintDocument)
	r.Delete("/documents/{id}", h.DeleteDocument)
	r.Get("/topics", h.ListTopics)
	r.Get("/questions", h.ListQuestions)
}

// errorBody is the JSON error envelope returned by every endpoint.
type errorBody struct {
	Error string `json:"error"`
}

// statusOf maps semantic error kinds to HTTP status codes. Unknown errors
// are treated as internal.
func statusOf(err error) int {
	switch {
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, serrors.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, serrors.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, serrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON renders v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders err as a JSON error response. Internal errors are logged
// and their details hidden from the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
		msg = "internal server error"
	}

	writeJSON(w, status, errorBody{Error: msg})
}

// documentID extracts and validates the {id} URL parameter.
func documentID(r *http.Request) (domain.DocumentID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return domain.DocumentID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid document ID %q", raw)
	}

	return domain.DocumentID(id), nil
}
