package handlers

import (
	"net/http"
	"time"

	"dailylect/internal/service"
)

// ProgressHandler serves the progress dashboard data
type ProgressHandler struct {
	progressService *service.ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// GetProgress returns the authenticated user's dashboard summary
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	summary, err := h.progressService.GetProgress(user.ID, time.Now())
	if err != nil {
		respondWithError(w, http.StatusServiceUnavailable, "Could not load progress", "Progress aggregation failed", err)
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}

// LearnedWords returns the words the user has ever answered correctly
func (h *ProgressHandler) LearnedWords(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	words, err := h.progressService.LearnedWords(user.ID)
	if err != nil {
		respondWithError(w, http.StatusServiceUnavailable, "Could not load learned words", "Learned words lookup failed", err)
		return
	}

	respondWithJSON(w, http.StatusOK, words)
}
