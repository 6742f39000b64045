package api

import (
	"net/http"

	"github.com/phrazzld/lingua-api/internal/api/shared"
	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/service"
)

// LedgerHandler serves the language catalog and the caller's enrollments.
type LedgerHandler struct {
	ledger service.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// ListLanguages handles GET /api/languages.
func (h *LedgerHandler) ListLanguages(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	languages, err := h.ledger.ListLanguages(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if languages == nil {
		languages = []domain.Language{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, languages)
}

// ListEnrollments handles GET /api/user/languages.
func (h *LedgerHandler) ListEnrollments(w http.ResponseWriter, r *http.Request, user *domain.User) {
	views, err := h.ledger.ListEnrollments(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if views == nil {
		views = []domain.EnrollmentView{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, views)
}

// Enroll handles POST /api/user/languages.
func (h *LedgerHandler) Enroll(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var req EnrollRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.ledger.Enroll(r.Context(), user.ID, req.LangID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Language added"})
}
