package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/rates"
	"github.com/koboapp/kobo/internal/usecase"
	"github.com/koboapp/kobo/internal/usecase/mocks"
)

func TestCurrencyUseCase_Rate(t *testing.T) {
	t.Parallel()

	source := &mocks.MockRateSource{
		Snapshot: rates.Snapshot{USD: 1, NGN: 1550, GBP: 0.79, FetchedAt: time.Now()},
	}
	uc := usecase.NewCurrencyUseCase(source)

	tests := []struct {
		name string
		from domain.Currency
		to   domain.Currency
		want float64
	}{
		{"usd to ngn", domain.CurrencyUSD, domain.CurrencyNGN, 1550},
		{"ngn to usd", domain.CurrencyNGN, domain.CurrencyUSD, 1.0 / 1550},
		{"same currency", domain.CurrencyUSD, domain.CurrencyUSD, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pair, err := uc.Rate(context.Background(), tt.from, tt.to)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if pair.Rate != tt.want {
				t.Errorf("rate = %v, want %v", pair.Rate, tt.want)
			}
		})
	}
}

func TestCurrencyUseCase_RateInvalidCurrency(t *testing.T) {
	t.Parallel()

	uc := usecase.NewCurrencyUseCase(&mocks.MockRateSource{Snapshot: rates.Fallback(time.Now())})

	if _, err := uc.Rate(context.Background(), "EUR", domain.CurrencyUSD); !errors.Is(err, domain.ErrInvalidCurrency) {
		t.Fatalf("expected ErrInvalidCurrency, got %v", err)
	}
}

func TestCurrencyUseCase_Rates(t *testing.T) {
	t.Parallel()

	fetched := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	source := &mocks.MockRateSource{
		Snapshot: rates.Snapshot{USD: 1, NGN: 1550, GBP: 0.79, FetchedAt: fetched},
	}
	uc := usecase.NewCurrencyUseCase(source)

	all := uc.Rates(context.Background())
	if all.Base != "USD" {
		t.Errorf("base = %s, want USD", all.Base)
	}
	if all.Rates["NGN"] != 1550 {
		t.Errorf("NGN rate = %v, want 1550", all.Rates["NGN"])
	}
	if all.LastUpdated != fetched.UnixMilli() {
		t.Errorf("lastUpdated = %d, want %d", all.LastUpdated, fetched.UnixMilli())
	}
}
