package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/koboapp/kobo/internal/adapter/http/dto"
	"github.com/koboapp/kobo/internal/adapter/http/middleware"
	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/finance"
	"github.com/koboapp/kobo/internal/usecase"
)

// SavingsService defines the behavior needed by SavingsHandler.
type SavingsService interface {
	Create(ctx context.Context, userID string, input usecase.SavingsInput) (*domain.SavingsAccount, error)
	Get(ctx context.Context, userID, id string) (*domain.SavingsAccount, error)
	List(ctx context.Context, userID string) ([]*domain.SavingsAccount, error)
	Update(ctx context.Context, userID, id string, input usecase.SavingsInput) (*domain.SavingsAccount, error)
	Delete(ctx context.Context, userID, id string) error
	Forecast(ctx context.Context, userID, id string, years int) (*finance.CompoundResult, error)
}

// SavingsHandler handles savings account HTTP requests.
type SavingsHandler struct {
	savingsUC SavingsService
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(savingsUC SavingsService) *SavingsHandler {
	return &SavingsHandler{savingsUC: savingsUC}
}

// Create creates a new savings account.
func (h *SavingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.SavingsAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.savingsUC.Create(r.Context(), user.ID, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create savings account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SavingsAccountFromDomain(account))
}

// Get retrieves a savings account by ID.
func (h *SavingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	account, err := h.savingsUC.Get(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get savings account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SavingsAccountFromDomain(account))
}

// List lists the caller's savings accounts.
func (h *SavingsHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	accounts, err := h.savingsUC.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list savings accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SavingsAccountsFromDomain(accounts))
}

// Update replaces a savings account.
func (h *SavingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.SavingsAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.savingsUC.Update(r.Context(), user.ID, chi.URLParam(r, "id"), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update savings account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SavingsAccountFromDomain(account))
}

// Delete removes a savings account.
func (h *SavingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	if err := h.savingsUC.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete savings account", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Forecast projects compound growth of an account. Horizon defaults to 10
// years, overridable with the years query parameter.
func (h *SavingsHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	years := parseIntQuery(r, "years", 10)

	result, err := h.savingsUC.Forecast(r.Context(), user.ID, chi.URLParam(r, "id"), years)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute forecast", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
