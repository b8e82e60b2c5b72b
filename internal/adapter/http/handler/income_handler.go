package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/koboapp/kobo/internal/adapter/http/dto"
	"github.com/koboapp/kobo/internal/adapter/http/middleware"
	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/usecase"
)

// IncomeService defines the behavior needed by IncomeHandler.
type IncomeService interface {
	Create(ctx context.Context, userID string, input usecase.IncomeInput) (*domain.Income, error)
	Get(ctx context.Context, userID, id string) (*domain.Income, error)
	List(ctx context.Context, userID string) ([]*domain.Income, error)
	Update(ctx context.Context, userID, id string, input usecase.IncomeInput) (*domain.Income, error)
	Delete(ctx context.Context, userID, id string) error
}

// IncomeHandler handles income HTTP requests.
type IncomeHandler struct {
	incomeUC IncomeService
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeUC IncomeService) *IncomeHandler {
	return &IncomeHandler{incomeUC: incomeUC}
}

// Create creates a new income record.
func (h *IncomeHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.IncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	income, err := h.incomeUC.Create(r.Context(), user.ID, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create income", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.IncomeFromDomain(income))
}

// Get retrieves an income record by ID.
func (h *IncomeHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	income, err := h.incomeUC.Get(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get income", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.IncomeFromDomain(income))
}

// List lists the caller's income records.
func (h *IncomeHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	incomes, err := h.incomeUC.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list income", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.IncomesFromDomain(incomes))
}

// Update replaces an income record.
func (h *IncomeHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.IncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	income, err := h.incomeUC.Update(r.Context(), user.ID, chi.URLParam(r, "id"), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update income", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.IncomeFromDomain(income))
}

// Delete removes an income record.
func (h *IncomeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	if err := h.incomeUC.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete income", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
