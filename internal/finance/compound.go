package finance

import (
	"time"

	"github.com/koboapp/kobo/internal/domain"
)

// MaxProjectionYears bounds the projection horizon.
const MaxProjectionYears = 100

// ProjectionInput holds the parameters for a compound interest projection.
// BaseYear labels the yearly checkpoints; zero means the current year.
type ProjectionInput struct {
	Principal           float64
	MonthlyContribution float64
	AnnualRatePct       float64
	Years               int
	BaseYear            int
}

// YearlySnapshot is one yearly checkpoint of a projection.
type YearlySnapshot struct {
	Year           int     `json:"year"`
	Balance        float64 `json:"balance"`
	Contributions  float64 `json:"contributions"`
	Interest       float64 `json:"interest"`
	YearlyInterest float64 `json:"yearly_interest"`
}

// CompoundResult is the outcome of a compound interest projection.
type CompoundResult struct {
	FutureValue        float64          `json:"future_value"`
	TotalContributions float64          `json:"total_contributions"`
	TotalInterest      float64          `json:"total_interest"`
	YearlyBreakdown    []YearlySnapshot `json:"yearly_breakdown"`
}

// Project simulates month-by-month growth of a balance under a fixed
// monthly contribution and a fixed annual rate, compounded monthly. Each
// month accrues interest on the running balance, then adds the
// contribution. Every 12th month emits a checkpoint. All emitted figures
// are rounded to 2 decimals.
func Project(in ProjectionInput) (*CompoundResult, error) {
	if err := validateProjection(in); err != nil {
		return nil, err
	}

	baseYear := in.BaseYear
	if baseYear == 0 {
		baseYear = time.Now().Year()
	}

	monthlyRate := in.AnnualRatePct / 100 / 12
	totalMonths := in.Years * 12

	balance := in.Principal
	totalContributions := in.Principal
	previousInterest := 0.0
	breakdown := make([]YearlySnapshot, 0, in.Years)

	for month := 1; month <= totalMonths; month++ {
		balance += balance * monthlyRate
		balance += in.MonthlyContribution
		totalContributions += in.MonthlyContribution

		if month%12 == 0 {
			contributionsToDate := in.Principal + in.MonthlyContribution*float64(month)
			interestToDate := balance - contributionsToDate
			yearlyInterest := interestToDate - previousInterest
			previousInterest = interestToDate

			breakdown = append(breakdown, YearlySnapshot{
				Year:           baseYear + month/12,
				Balance:        Round2(balance),
				Contributions:  Round2(contributionsToDate),
				Interest:       Round2(interestToDate),
				YearlyInterest: Round2(yearlyInterest),
			})
		}
	}

	return &CompoundResult{
		FutureValue:        Round2(balance),
		TotalContributions: Round2(totalContributions),
		TotalInterest:      Round2(balance - totalContributions),
		YearlyBreakdown:    breakdown,
	}, nil
}

func validateProjection(in ProjectionInput) error {
	if in.Principal < 0 {
		return domain.ErrNegativePrincipal
	}
	if in.MonthlyContribution < 0 {
		return domain.ErrNegativeContribution
	}
	if in.AnnualRatePct < 0 {
		return domain.ErrNegativeRate
	}
	if in.Years < 0 {
		return domain.ErrNegativeYears
	}
	if in.Years > MaxProjectionYears {
		return domain.ErrTooManyYears
	}
	return nil
}
