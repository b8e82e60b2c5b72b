package handler

import (
	"context"
	"net/http"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/usecase"
)

// CurrencyService defines the behavior needed by CurrencyHandler.
type CurrencyService interface {
	Rate(ctx context.Context, from, to domain.Currency) (*usecase.PairRate, error)
	Rates(ctx context.Context) *usecase.AllRates
}

// CurrencyHandler serves exchange rate endpoints.
type CurrencyHandler struct {
	currencyUC CurrencyService
}

// NewCurrencyHandler creates a new CurrencyHandler.
func NewCurrencyHandler(currencyUC CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencyUC: currencyUC}
}

// Rate returns the conversion rate for a currency pair. Defaults to
// USD to NGN when the from/to query parameters are missing.
func (h *CurrencyHandler) Rate(w http.ResponseWriter, r *http.Request) {
	from := domain.Currency(r.URL.Query().Get("from"))
	if from == "" {
		from = domain.CurrencyUSD
	}
	to := domain.Currency(r.URL.Query().Get("to"))
	if to == "" {
		to = domain.CurrencyNGN
	}

	pair, err := h.currencyUC.Rate(r.Context(), from, to)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get rate", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

// Rates returns the full cached snapshot.
func (h *CurrencyHandler) Rates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.currencyUC.Rates(r.Context()))
}
