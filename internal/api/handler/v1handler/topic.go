package v1handler

import (
	"net/http"

	"corpus/pkg/domain"
)

// topicList is the response of ListTopics.
type topicList struct {
	Items []domain.Topic `json:"items"`
}

// ListTopics returns the corpus navigation structure: every topic carried by
// at least one live document, with document counts.
func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.deps.Linter.Topics(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	if topics == nil {
		topics = []domain.Topic{}
	}
	writeJSON(w, http.StatusOK, topicList{Items: topics})
}

// questionList is the response of ListQuestions.
type questionList struct {
	Items []domain.Question `json:"items"`
}

// ListQuestions returns interview questions in document order, optionally
// filtered by topic.
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.deps.Linter.Questions(r.Context(), r.URL.Query().Get("topic"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	if questions == nil {
		questions = []domain.Question{}
	}
	writeJSON(w, http.StatusOK, questionList{Items: questions})
}
