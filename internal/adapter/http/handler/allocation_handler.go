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

// AllocationService defines the behavior needed by AllocationHandler.
type AllocationService interface {
	Create(ctx context.Context, userID string, input usecase.AllocationInput) (*domain.SavingsAllocation, error)
	Get(ctx context.Context, userID, id string) (*domain.SavingsAllocation, error)
	List(ctx context.Context, userID string) ([]*domain.SavingsAllocation, error)
	Update(ctx context.Context, userID, id string, input usecase.AllocationInput) (*domain.SavingsAllocation, error)
	Delete(ctx context.Context, userID, id string) error
}

// AllocationHandler handles savings allocation HTTP requests.
type AllocationHandler struct {
	allocUC AllocationService
}

// NewAllocationHandler creates a new AllocationHandler.
func NewAllocationHandler(allocUC AllocationService) *AllocationHandler {
	return &AllocationHandler{allocUC: allocUC}
}

// Create creates a new savings allocation.
func (h *AllocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.AllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	alloc, err := h.allocUC.Create(r.Context(), user.ID, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create allocation", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AllocationFromDomain(alloc))
}

// Get retrieves an allocation by ID.
func (h *AllocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	alloc, err := h.allocUC.Get(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get allocation", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AllocationFromDomain(alloc))
}

// List lists the caller's allocations.
func (h *AllocationHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	allocs, err := h.allocUC.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list allocations", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AllocationsFromDomain(allocs))
}

// Update replaces an allocation.
func (h *AllocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.AllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	alloc, err := h.allocUC.Update(r.Context(), user.ID, chi.URLParam(r, "id"), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update allocation", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AllocationFromDomain(alloc))
}

// Delete removes an allocation.
func (h *AllocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	if err := h.allocUC.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete allocation", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
