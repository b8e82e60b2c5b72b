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

// SubscriptionService defines the behavior needed by SubscriptionHandler.
type SubscriptionService interface {
	Create(ctx context.Context, userID string, input usecase.SubscriptionInput) (*domain.Subscription, error)
	Get(ctx context.Context, userID, id string) (*domain.Subscription, error)
	List(ctx context.Context, userID string) ([]*domain.Subscription, error)
	Update(ctx context.Context, userID, id string, input usecase.SubscriptionInput) (*domain.Subscription, error)
	Delete(ctx context.Context, userID, id string) error
}

// SubscriptionHandler handles subscription HTTP requests.
type SubscriptionHandler struct {
	subUC SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subUC SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subUC: subUC}
}

// Create creates a new subscription.
func (h *SubscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.SubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	sub, err := h.subUC.Create(r.Context(), user.ID, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create subscription", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SubscriptionFromDomain(sub))
}

// Get retrieves a subscription by ID.
func (h *SubscriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	sub, err := h.subUC.Get(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get subscription", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SubscriptionFromDomain(sub))
}

// List lists the caller's subscriptions.
func (h *SubscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	subs, err := h.subUC.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list subscriptions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SubscriptionsFromDomain(subs))
}

// Update replaces a subscription.
func (h *SubscriptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.SubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	sub, err := h.subUC.Update(r.Context(), user.ID, chi.URLParam(r, "id"), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update subscription", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SubscriptionFromDomain(sub))
}

// Delete removes a subscription.
func (h *SubscriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	if err := h.subUC.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete subscription", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
