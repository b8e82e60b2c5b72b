package handler

import (
	"context"
	"net/http"

	"github.com/koboapp/kobo/internal/adapter/http/dto"
	"github.com/koboapp/kobo/internal/adapter/http/middleware"
	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/usecase"
)

// DashboardService defines the behavior needed by DashboardHandler.
type DashboardService interface {
	Overview(ctx context.Context, userID string, display domain.Currency) (*usecase.Overview, error)
}

// DashboardHandler serves the aggregated dashboard view.
type DashboardHandler struct {
	dashboardUC DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardUC DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// Overview returns the caller's dashboard. The display query parameter
// selects the display currency and defaults to NGN.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	display := domain.Currency(r.URL.Query().Get("display"))
	if display == "" {
		display = domain.CurrencyNGN
	}

	view, err := h.dashboardUC.Overview(r.Context(), user.ID, display)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build dashboard", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardFromOverview(view))
}
