package finance

import (
	"errors"
	"testing"

	"github.com/koboapp/kobo/internal/domain"
)

func TestProject_ZeroRateZeroContribution(t *testing.T) {
	result, err := Project(ProjectionInput{Principal: 1000, Years: 5, BaseYear: 2026})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FutureValue != 1000 {
		t.Errorf("future value = %v, want 1000", result.FutureValue)
	}
	if result.TotalInterest != 0 {
		t.Errorf("total interest = %v, want 0", result.TotalInterest)
	}
	if len(result.YearlyBreakdown) != 5 {
		t.Fatalf("breakdown length = %d, want 5", len(result.YearlyBreakdown))
	}
	if result.YearlyBreakdown[0].Year != 2027 {
		t.Errorf("first checkpoint year = %d, want 2027", result.YearlyBreakdown[0].Year)
	}
}

func TestProject_ContributionsOnly(t *testing.T) {
	result, err := Project(ProjectionInput{MonthlyContribution: 100, Years: 1, BaseYear: 2026})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalContributions != 1200 {
		t.Errorf("total contributions = %v, want 1200", result.TotalContributions)
	}
	if result.FutureValue != 1200 {
		t.Errorf("future value = %v, want 1200", result.FutureValue)
	}
	if result.TotalInterest != 0 {
		t.Errorf("total interest = %v, want 0", result.TotalInterest)
	}
}

func TestProject_ZeroYears(t *testing.T) {
	result, err := Project(ProjectionInput{Principal: 500, MonthlyContribution: 10, AnnualRatePct: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.YearlyBreakdown) != 0 {
		t.Errorf("breakdown length = %d, want 0", len(result.YearlyBreakdown))
	}
	if result.FutureValue != 500 {
		t.Errorf("future value = %v, want principal 500", result.FutureValue)
	}
}

// Pinned scenario, re-derived independently from the documented iterative
// formula (interest accrual before contribution each month).
func TestProject_PinnedScenario(t *testing.T) {
	result, err := Project(ProjectionInput{
		Principal:           100000,
		MonthlyContribution: 10000,
		AnnualRatePct:       10,
		Years:               10,
		BaseYear:            2026,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FutureValue != 2319153.94 {
		t.Errorf("future value = %v, want 2319153.94", result.FutureValue)
	}
	if result.TotalContributions != 1300000 {
		t.Errorf("total contributions = %v, want 1300000", result.TotalContributions)
	}
	if result.TotalInterest != 1019153.94 {
		t.Errorf("total interest = %v, want 1019153.94", result.TotalInterest)
	}

	year1 := result.YearlyBreakdown[0]
	if year1.Balance != 236126.99 {
		t.Errorf("year 1 balance = %v, want 236126.99", year1.Balance)
	}
	if year1.Contributions != 220000 {
		t.Errorf("year 1 contributions = %v, want 220000", year1.Contributions)
	}
	if year1.Interest != 16126.99 {
		t.Errorf("year 1 interest = %v, want 16126.99", year1.Interest)
	}
	if year1.YearlyInterest != year1.Interest {
		t.Errorf("first yearly interest = %v, want equal to interest to date", year1.YearlyInterest)
	}

	year2 := result.YearlyBreakdown[1]
	if year2.YearlyInterest != 30381.26 {
		t.Errorf("year 2 yearly interest = %v, want 30381.26", year2.YearlyInterest)
	}

	last := result.YearlyBreakdown[len(result.YearlyBreakdown)-1]
	if last.Balance != result.FutureValue {
		t.Errorf("final checkpoint balance %v != future value %v", last.Balance, result.FutureValue)
	}
}

func TestProject_InvalidInputs(t *testing.T) {
	tests := []struct {
		name  string
		input ProjectionInput
		want  error
	}{
		{"negative principal", ProjectionInput{Principal: -1, Years: 1}, domain.ErrNegativePrincipal},
		{"negative contribution", ProjectionInput{MonthlyContribution: -1, Years: 1}, domain.ErrNegativeContribution},
		{"negative rate", ProjectionInput{AnnualRatePct: -1, Years: 1}, domain.ErrNegativeRate},
		{"negative years", ProjectionInput{Years: -1}, domain.ErrNegativeYears},
		{"horizon too long", ProjectionInput{Years: 101}, domain.ErrTooManyYears},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Project(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Project error = %v, want %v", err, tt.want)
			}
		})
	}
}
