package usecase

import (
	"context"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/finance"
)

// CurrencyUseCase exposes the cached exchange rate views.
type CurrencyUseCase struct {
	rateSource RateSource
}

// NewCurrencyUseCase creates a new CurrencyUseCase.
func NewCurrencyUseCase(rateSource RateSource) *CurrencyUseCase {
	return &CurrencyUseCase{rateSource: rateSource}
}

// PairRate is the conversion rate between two supported currencies.
type PairRate struct {
	From domain.Currency `json:"from"`
	To   domain.Currency `json:"to"`
	Rate float64         `json:"rate"`
}

// AllRates is the full USD-based snapshot plus its freshness marker.
// LastUpdated is epoch milliseconds of the fetch that produced the snapshot.
type AllRates struct {
	Base        string             `json:"base"`
	Rates       map[string]float64 `json:"rates"`
	LastUpdated int64              `json:"lastUpdated"`
}

// Rate returns the rate for converting one unit of from into to.
func (uc *CurrencyUseCase) Rate(ctx context.Context, from, to domain.Currency) (*PairRate, error) {
	if err := domain.ValidateCurrency(from); err != nil {
		return nil, err
	}
	if err := domain.ValidateCurrency(to); err != nil {
		return nil, err
	}

	snapshot := uc.rateSource.Get(ctx)
	return &PairRate{
		From: from,
		To:   to,
		Rate: finance.PairRate(from, to, snapshot.NGN),
	}, nil
}

// Rates returns the whole snapshot keyed by currency code.
func (uc *CurrencyUseCase) Rates(ctx context.Context) *AllRates {
	snapshot := uc.rateSource.Get(ctx)
	return &AllRates{
		Base: "USD",
		Rates: map[string]float64{
			"USD": snapshot.USD,
			"NGN": snapshot.NGN,
			"GBP": snapshot.GBP,
		},
		LastUpdated: snapshot.FetchedAt.UnixMilli(),
	}
}
