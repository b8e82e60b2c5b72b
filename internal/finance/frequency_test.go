package finance

import (
	"math"
	"testing"

	"github.com/koboapp/kobo/internal/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMonthlyAmount(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		frequency domain.Frequency
		workHours bool
		want      float64
	}{
		{"hourly work hours", 10, domain.FrequencyHourly, true, 1760},
		{"hourly full day", 10, domain.FrequencyHourly, false, 7200},
		{"daily", 100, domain.FrequencyDaily, false, 3000},
		{"weekly", 100, domain.FrequencyWeekly, false, 433},
		{"monthly identity", 250.5, domain.FrequencyMonthly, false, 250.5},
		{"quarterly", 300, domain.FrequencyQuarterly, false, 100},
		{"yearly", 1200, domain.FrequencyYearly, false, 100},
		{"one-time excluded", 5000, domain.FrequencyOneTime, false, 0},
		{"unknown passes through", 42, domain.Frequency("fortnightly"), false, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyAmount(tt.amount, tt.frequency, tt.workHours)
			if !almostEqual(got, tt.want) {
				t.Errorf("MonthlyAmount(%v, %q, %v) = %v, want %v",
					tt.amount, tt.frequency, tt.workHours, got, tt.want)
			}
		})
	}
}

func TestYearlyAmount(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		frequency domain.Frequency
		workHours bool
		want      float64
	}{
		{"hourly work hours", 10, domain.FrequencyHourly, true, 20800},
		{"hourly full day", 10, domain.FrequencyHourly, false, 87600},
		{"daily", 10, domain.FrequencyDaily, false, 3650},
		{"weekly", 100, domain.FrequencyWeekly, false, 5200},
		{"monthly", 100, domain.FrequencyMonthly, false, 1200},
		{"quarterly", 300, domain.FrequencyQuarterly, false, 1200},
		{"yearly identity", 1200, domain.FrequencyYearly, false, 1200},
		{"one-time counted once", 5000, domain.FrequencyOneTime, false, 5000},
		{"unknown passes through", 42, domain.Frequency("fortnightly"), false, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YearlyAmount(tt.amount, tt.frequency, tt.workHours)
			if !almostEqual(got, tt.want) {
				t.Errorf("YearlyAmount(%v, %q, %v) = %v, want %v",
					tt.amount, tt.frequency, tt.workHours, got, tt.want)
			}
		})
	}
}

// A one-time amount contributes nothing to a recurring monthly total but
// counts once in a yearly total. Deliberate asymmetry; do not "fix" it.
func TestOneTimeAsymmetry(t *testing.T) {
	for _, amount := range []float64{0, 1, 99.99, 123456.78} {
		if got := MonthlyAmount(amount, domain.FrequencyOneTime, false); got != 0 {
			t.Errorf("MonthlyAmount(%v, one-time) = %v, want 0", amount, got)
		}
		if got := YearlyAmount(amount, domain.FrequencyOneTime, false); got != amount {
			t.Errorf("YearlyAmount(%v, one-time) = %v, want %v", amount, got, amount)
		}
	}
}

// Normalizing to monthly first must not change a subsequent yearly
// normalization for a monthly amount.
func TestMonthlyYearlyComposition(t *testing.T) {
	for _, amount := range []float64{1, 49.99, 1000, 123456.78} {
		direct := YearlyAmount(amount, domain.FrequencyMonthly, false)
		composed := YearlyAmount(MonthlyAmount(amount, domain.FrequencyMonthly, false), domain.FrequencyMonthly, false)
		if !almostEqual(direct, composed) {
			t.Errorf("composition mismatch for %v: direct %v, composed %v", amount, direct, composed)
		}
	}
}

func TestWorkHoursIgnoredForNonHourly(t *testing.T) {
	for _, freq := range []domain.Frequency{
		domain.FrequencyDaily, domain.FrequencyWeekly, domain.FrequencyMonthly,
		domain.FrequencyQuarterly, domain.FrequencyYearly, domain.FrequencyOneTime,
	} {
		plain := MonthlyAmount(100, freq, false)
		flagged := MonthlyAmount(100, freq, true)
		if plain != flagged {
			t.Errorf("workHours changed %q normalization: %v vs %v", freq, plain, flagged)
		}
	}
}
