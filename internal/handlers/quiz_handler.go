package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dailylect/internal/repository"
	"dailylect/internal/service"
	"dailylect/internal/validation"
)

// QuizHandler serves quiz access checks, quiz generation and result
// submission
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// Access reports whether the authenticated user has unlocked the quiz
func (h *QuizHandler) Access(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	access, err := h.quizService.CheckAccess(user.ID)
	if err != nil {
		respondWithError(w, http.StatusServiceUnavailable, "Could not check quiz access", "Quiz access check failed", err)
		return
	}

	respondWithJSON(w, http.StatusOK, access)
}

// Generate builds a fresh quiz for the authenticated user. An optional
// ?count= parameter overrides the default question count.
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	count := service.DefaultQuizSize
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondWithError(w, http.StatusBadRequest, "count must be a positive integer", "", nil)
			return
		}
		count = parsed
	}

	quiz, err := h.quizService.GenerateQuiz(user.ID, count)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuizLocked):
			respondWithError(w, http.StatusForbidden, "Quiz locked: keep logging in daily to unlock it", "", nil)
		case errors.Is(err, service.ErrCatalogExhausted):
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Quiz generation failed", err)
		case errors.Is(err, repository.ErrStorageUnavailable):
			respondWithError(w, http.StatusServiceUnavailable, "Storage unavailable, try again", "Quiz generation failed", err)
		default:
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Quiz generation failed", err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, quiz)
}

type submitResultRequest struct {
	QuizID  string                    `json:"quizId"`
	Answers []service.SubmittedAnswer `json:"answers"`
}

// SubmitResult grades and persists a completed quiz attempt. When grading
// succeeds but the save fails, the graded result is still returned with
// 202 so the client can show the score and retry the save.
func (h *QuizHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req submitResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	result, err := h.quizService.SubmitResult(user.ID, req.QuizID, req.Answers, time.Now())
	if err != nil {
		var validationErr validation.ValidationError
		switch {
		case errors.As(err, &validationErr):
			respondWithError(w, http.StatusBadRequest, validationErr.Error(), "", nil)
		case result != nil:
			// Graded but not persisted
			respondWithError(w, http.StatusAccepted, "Quiz graded but result could not be saved, retry the submission", "Quiz result save failed", err)
		default:
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Quiz submission failed", err)
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, result)
}
