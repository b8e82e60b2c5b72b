package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/koboapp/kobo/internal/finance"
)

func TestCalculatorHandler_Compound(t *testing.T) {
	h := NewCalculatorHandler()

	body, _ := json.Marshal(map[string]any{
		"principal":            100000,
		"monthly_contribution": 10000,
		"annual_rate_pct":      10,
		"years":                10,
	})

	req := httptest.NewRequest(http.MethodPost, "/calculator/compound", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Compound(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result finance.CompoundResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if math.Abs(result.FutureValue-2319153.94) > 0.01 {
		t.Fatalf("expected future value 2319153.94, got %.2f", result.FutureValue)
	}
	if result.TotalContributions != 1300000 {
		t.Fatalf("expected contributions 1300000, got %.2f", result.TotalContributions)
	}
	if len(result.YearlyBreakdown) != 10 {
		t.Fatalf("expected 10 yearly snapshots, got %d", len(result.YearlyBreakdown))
	}
}

func TestCalculatorHandler_Compound_InvalidParams(t *testing.T) {
	h := NewCalculatorHandler()

	tests := []struct {
		name string
		body map[string]any
	}{
		{"negative years", map[string]any{"principal": 1000, "years": -1}},
		{"horizon too long", map[string]any{"principal": 1000, "years": 101}},
		{"negative principal", map[string]any{"principal": -5, "years": 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/calculator/compound", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.Compound(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestCalculatorHandler_Compound_InvalidJSON(t *testing.T) {
	h := NewCalculatorHandler()

	req := httptest.NewRequest(http.MethodPost, "/calculator/compound", bytes.NewBufferString(`{`))
	rec := httptest.NewRecorder()

	h.Compound(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
