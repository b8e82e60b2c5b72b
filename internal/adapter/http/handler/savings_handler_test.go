package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/finance"
	"github.com/koboapp/kobo/internal/usecase"
)

type savingsServiceStub struct {
	createFn   func(ctx context.Context, userID string, input usecase.SavingsInput) (*domain.SavingsAccount, error)
	getFn      func(ctx context.Context, userID, id string) (*domain.SavingsAccount, error)
	listFn     func(ctx context.Context, userID string) ([]*domain.SavingsAccount, error)
	updateFn   func(ctx context.Context, userID, id string, input usecase.SavingsInput) (*domain.SavingsAccount, error)
	deleteFn   func(ctx context.Context, userID, id string) error
	forecastFn func(ctx context.Context, userID, id string, years int) (*finance.CompoundResult, error)
}

func (s *savingsServiceStub) Create(ctx context.Context, userID string, input usecase.SavingsInput) (*domain.SavingsAccount, error) {
	return s.createFn(ctx, userID, input)
}

func (s *savingsServiceStub) Get(ctx context.Context, userID, id string) (*domain.SavingsAccount, error) {
	return s.getFn(ctx, userID, id)
}

func (s *savingsServiceStub) List(ctx context.Context, userID string) ([]*domain.SavingsAccount, error) {
	return s.listFn(ctx, userID)
}

func (s *savingsServiceStub) Update(ctx context.Context, userID, id string, input usecase.SavingsInput) (*domain.SavingsAccount, error) {
	return s.updateFn(ctx, userID, id, input)
}

func (s *savingsServiceStub) Delete(ctx context.Context, userID, id string) error {
	return s.deleteFn(ctx, userID, id)
}

func (s *savingsServiceStub) Forecast(ctx context.Context, userID, id string, years int) (*finance.CompoundResult, error) {
	return s.forecastFn(ctx, userID, id, years)
}

func TestSavingsHandler_Forecast_DefaultHorizon(t *testing.T) {
	var gotYears int
	h := NewSavingsHandler(&savingsServiceStub{
		forecastFn: func(ctx context.Context, userID, id string, years int) (*finance.CompoundResult, error) {
			gotYears = years
			return &finance.CompoundResult{FutureValue: 2319153.94, TotalContributions: 1300000}, nil
		},
	})

	req := withUser(httptest.NewRequest(http.MethodGet, "/savings/sav-1/forecast", nil), "user-1")
	req = withURLParam(req, "id", "sav-1")
	rec := httptest.NewRecorder()

	h.Forecast(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotYears != 10 {
		t.Fatalf("expected default horizon of 10 years, got %d", gotYears)
	}

	var result finance.CompoundResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.FutureValue != 2319153.94 {
		t.Fatalf("expected future value 2319153.94, got %.2f", result.FutureValue)
	}
}

func TestSavingsHandler_Forecast_YearsQuery(t *testing.T) {
	var gotYears int
	h := NewSavingsHandler(&savingsServiceStub{
		forecastFn: func(ctx context.Context, userID, id string, years int) (*finance.CompoundResult, error) {
			gotYears = years
			return &finance.CompoundResult{}, nil
		},
	})

	req := withUser(httptest.NewRequest(http.MethodGet, "/savings/sav-1/forecast?years=25", nil), "user-1")
	req = withURLParam(req, "id", "sav-1")
	rec := httptest.NewRecorder()

	h.Forecast(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotYears != 25 {
		t.Fatalf("expected 25 years, got %d", gotYears)
	}
}

func TestSavingsHandler_Forecast_HorizonTooLong(t *testing.T) {
	h := NewSavingsHandler(&savingsServiceStub{
		forecastFn: func(ctx context.Context, userID, id string, years int) (*finance.CompoundResult, error) {
			return nil, domain.ErrTooManyYears
		},
	})

	req := withUser(httptest.NewRequest(http.MethodGet, "/savings/sav-1/forecast?years=101", nil), "user-1")
	req = withURLParam(req, "id", "sav-1")
	rec := httptest.NewRecorder()

	h.Forecast(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSavingsHandler_Forecast_NotFound(t *testing.T) {
	h := NewSavingsHandler(&savingsServiceStub{
		forecastFn: func(ctx context.Context, userID, id string, years int) (*finance.CompoundResult, error) {
			return nil, domain.ErrSavingsNotFound
		},
	})

	req := withUser(httptest.NewRequest(http.MethodGet, "/savings/missing/forecast", nil), "user-1")
	req = withURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	h.Forecast(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
