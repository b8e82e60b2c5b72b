package handler

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/koboapp/kobo/internal/adapter/http/dto"
)

// ReminderService defines the behavior needed by CronHandler.
type ReminderService interface {
	SendDue(ctx context.Context) (int, error)
}

// CronHandler exposes background jobs over HTTP so an external scheduler
// can trigger them. Requests authenticate with a shared secret instead of
// a user token.
type CronHandler struct {
	reminderUC ReminderService
	secret     string
}

// NewCronHandler creates a new CronHandler.
func NewCronHandler(reminderUC ReminderService, secret string) *CronHandler {
	return &CronHandler{
		reminderUC: reminderUC,
		secret:     secret,
	}
}

// SavingsReminder runs the savings reminder job once.
func (h *CronHandler) SavingsReminder(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	sent, err := h.reminderUC.SendDue(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "reminder job failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReminderRunResponse{Sent: sent})
}

func (h *CronHandler) authorized(r *http.Request) bool {
	if h.secret == "" {
		return false
	}

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}
