package handler

import (
	"encoding/json"
	"net/http"

	"github.com/koboapp/kobo/internal/adapter/http/dto"
	"github.com/koboapp/kobo/internal/finance"
	"github.com/koboapp/kobo/internal/metrics"
)

// CalculatorHandler serves the standalone compound interest calculator.
// It is pure computation over the request body and touches no stored data.
type CalculatorHandler struct{}

// NewCalculatorHandler creates a new CalculatorHandler.
func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// Compound runs a compound interest projection.
func (h *CalculatorHandler) Compound(w http.ResponseWriter, r *http.Request) {
	var req dto.CompoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := finance.Project(req.ToProjectionInput())
	if err != nil {
		writeError(w, mapDomainError(err), "invalid projection parameters", err.Error())
		return
	}

	metrics.ProjectionComputed()

	writeJSON(w, http.StatusOK, result)
}
