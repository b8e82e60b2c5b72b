package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/usecase"
	"github.com/koboapp/kobo/internal/usecase/mocks"
)

func savingsAccountFixture() *domain.SavingsAccount {
	return &domain.SavingsAccount{
		ID:                  "sav-1",
		UserID:              "user-1",
		Name:                "Emergency fund",
		Balance:             decimal.NewFromInt(100000),
		Currency:            domain.CurrencyUSD,
		MonthlyContribution: decimal.NewFromInt(10000),
		InterestRatePct:     decimal.NewFromInt(10),
		LastUpdated:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSavingsUseCase_Create(t *testing.T) {
	t.Parallel()

	repo := &mocks.MockSavingsRepository{}
	uc := usecase.NewSavingsUseCase(repo, &mocks.MockIDGenerator{IDs: []string{"sav-1"}})

	account, err := uc.Create(context.Background(), "user-1", usecase.SavingsInput{
		Name:     "Emergency fund",
		Balance:  decimal.NewFromInt(50000),
		Currency: domain.CurrencyNGN,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.ID != "sav-1" || account.UserID != "user-1" {
		t.Errorf("unexpected identity: %s owned by %s", account.ID, account.UserID)
	}
	if account.LastUpdated.IsZero() {
		t.Error("expected LastUpdated to be set on create")
	}
}

func TestSavingsUseCase_CreateNegativeRate(t *testing.T) {
	t.Parallel()

	uc := usecase.NewSavingsUseCase(&mocks.MockSavingsRepository{}, &mocks.MockIDGenerator{})

	_, err := uc.Create(context.Background(), "user-1", usecase.SavingsInput{
		Name:            "Bad",
		Balance:         decimal.NewFromInt(100),
		Currency:        domain.CurrencyUSD,
		InterestRatePct: decimal.NewFromInt(-1),
	})
	if !errors.Is(err, domain.ErrNegativeRate) {
		t.Fatalf("expected ErrNegativeRate, got %v", err)
	}
}

func TestSavingsUseCase_UpdateRefreshesLastUpdatedOnBalanceChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		newBalance    decimal.Decimal
		expectRefresh bool
	}{
		{"balance changed", decimal.NewFromInt(120000), true},
		{"balance unchanged", decimal.NewFromInt(100000), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fixture := savingsAccountFixture()
			repo := &mocks.MockSavingsRepository{
				GetByIDFunc: func(context.Context, string, string) (*domain.SavingsAccount, error) {
					copied := *fixture
					return &copied, nil
				},
			}
			uc := usecase.NewSavingsUseCase(repo, &mocks.MockIDGenerator{})

			account, err := uc.Update(context.Background(), "user-1", "sav-1", usecase.SavingsInput{
				Name:                fixture.Name,
				Balance:             tt.newBalance,
				Currency:            fixture.Currency,
				MonthlyContribution: fixture.MonthlyContribution,
				InterestRatePct:     fixture.InterestRatePct,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			refreshed := account.LastUpdated.After(fixture.LastUpdated)
			if refreshed != tt.expectRefresh {
				t.Errorf("LastUpdated refresh = %v, want %v", refreshed, tt.expectRefresh)
			}
		})
	}
}

func TestSavingsUseCase_Forecast(t *testing.T) {
	t.Parallel()

	repo := &mocks.MockSavingsRepository{
		GetByIDFunc: func(context.Context, string, string) (*domain.SavingsAccount, error) {
			return savingsAccountFixture(), nil
		},
	}
	uc := usecase.NewSavingsUseCase(repo, &mocks.MockIDGenerator{})

	result, err := uc.Forecast(context.Background(), "user-1", "sav-1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FutureValue != 2319153.94 {
		t.Errorf("future value = %v, want 2319153.94", result.FutureValue)
	}
	if result.TotalContributions != 1300000 {
		t.Errorf("total contributions = %v, want 1300000", result.TotalContributions)
	}
	if len(result.YearlyBreakdown) != 10 {
		t.Errorf("expected 10 yearly snapshots, got %d", len(result.YearlyBreakdown))
	}
}

func TestSavingsUseCase_ForecastInvalidYears(t *testing.T) {
	t.Parallel()

	repo := &mocks.MockSavingsRepository{
		GetByIDFunc: func(context.Context, string, string) (*domain.SavingsAccount, error) {
			return savingsAccountFixture(), nil
		},
	}
	uc := usecase.NewSavingsUseCase(repo, &mocks.MockIDGenerator{})

	if _, err := uc.Forecast(context.Background(), "user-1", "sav-1", -1); !errors.Is(err, domain.ErrNegativeYears) {
		t.Fatalf("expected ErrNegativeYears, got %v", err)
	}
	if _, err := uc.Forecast(context.Background(), "user-1", "sav-1", 101); !errors.Is(err, domain.ErrTooManyYears) {
		t.Fatalf("expected ErrTooManyYears, got %v", err)
	}
}

func TestSavingsUseCase_ForecastAccountNotFound(t *testing.T) {
	t.Parallel()

	uc := usecase.NewSavingsUseCase(&mocks.MockSavingsRepository{}, &mocks.MockIDGenerator{})

	if _, err := uc.Forecast(context.Background(), "user-1", "missing", 10); !errors.Is(err, domain.ErrSavingsNotFound) {
		t.Fatalf("expected ErrSavingsNotFound, got %v", err)
	}
}
