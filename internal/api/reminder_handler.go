package api

import (
	"net/http"

	"github.com/phrazzld/lingua-api/internal/api/shared"
	"github.com/phrazzld/lingua-api/internal/service/reminder"
)

// ReminderHandler triggers the reminder sweep.
type ReminderHandler struct {
	reminders reminder.Service
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminders reminder.Service) *ReminderHandler {
	return &ReminderHandler{reminders: reminders}
}

// SendReminder handles POST /api/send_reminder. The route is not
// authenticated; restrict it at the network edge.
func (h *ReminderHandler) SendReminder(w http.ResponseWriter, r *http.Request) {
	sent, err := h.reminders.SendAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ReminderResponse{Sent: sent})
}
