package api

import (
	"net/http"

	"github.com/phrazzld/lingua-api/internal/api/shared"
	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/service/personalization"
)

// PracticeHandler serves lessons and exercises and records submissions.
type PracticeHandler struct {
	practice personalization.Service
}

// NewPracticeHandler creates a new PracticeHandler.
func NewPracticeHandler(practice personalization.Service) *PracticeHandler {
	return &PracticeHandler{practice: practice}
}

// Lessons handles GET /api/lessons/{lang_id}.
func (h *PracticeHandler) Lessons(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	langID, err := getPathID(r, "lang_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	lessons, err := h.practice.Lessons(r.Context(), langID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, lessons)
}

// Exercises handles GET /api/exercises/{lang_id}.
func (h *PracticeHandler) Exercises(w http.ResponseWriter, r *http.Request, user *domain.User) {
	langID, err := getPathID(r, "lang_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	set, err := h.practice.Exercises(r.Context(), user.ID, langID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, set)
}

// Submit handles POST /api/exercise/submit.
func (h *PracticeHandler) Submit(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var req SubmitExerciseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	progress, err := h.practice.Submit(r.Context(), user.ID, personalization.SubmitInput{
		ExerciseID: req.ExerciseID,
		Score:      *req.Score,
		LanguageID: req.LangID,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SubmitExerciseResponse{
		Message:     "Recorded",
		NewProgress: progress,
	})
}
