// Package finance implements the normalization and aggregation engine:
// frequency normalization, currency conversion and formatting, compound
// interest projection, and the derived dashboard views.
package finance

import "github.com/koboapp/kobo/internal/domain"

// Normalization multipliers. Work-hours assumes 8h days, 22 working days a
// month and 260 working days a year; full-day hourly runs around the clock.
const (
	workHoursPerMonth = 8 * 22  // 176
	fullHoursPerMonth = 24 * 30 // 720
	workHoursPerYear  = 8 * 260 // 2080
	fullHoursPerYear  = 24 * 365
	daysPerMonth      = 30
	weeksPerMonth     = 4.33
)

// MonthlyAmount converts an amount with the given recurrence frequency into
// its monthly equivalent. One-time amounts contribute nothing to a recurring
// monthly total. workHours only applies to hourly income; callers pass false
// for every other record kind.
//
// Unknown frequencies return the amount unchanged; request validation
// rejects them before they reach this point.
func MonthlyAmount(amount float64, frequency domain.Frequency, workHours bool) float64 {
	switch frequency {
	case domain.FrequencyHourly:
		if workHours {
			return amount * workHoursPerMonth
		}
		return amount * fullHoursPerMonth
	case domain.FrequencyDaily:
		return amount * daysPerMonth
	case domain.FrequencyWeekly:
		return amount * weeksPerMonth
	case domain.FrequencyMonthly:
		return amount
	case domain.FrequencyQuarterly:
		return amount / 3
	case domain.FrequencyYearly:
		return amount / 12
	case domain.FrequencyOneTime:
		return 0
	default:
		return amount
	}
}

// YearlyAmount converts an amount with the given recurrence frequency into
// its yearly equivalent. Unlike MonthlyAmount, one-time amounts count once
// in a yearly total. The asymmetry is intentional: a one-time item belongs
// in an annual picture but not in a recurring monthly one.
func YearlyAmount(amount float64, frequency domain.Frequency, workHours bool) float64 {
	switch frequency {
	case domain.FrequencyHourly:
		if workHours {
			return amount * workHoursPerYear
		}
		return amount * fullHoursPerYear
	case domain.FrequencyDaily:
		return amount * 365
	case domain.FrequencyWeekly:
		return amount * 52
	case domain.FrequencyMonthly:
		return amount * 12
	case domain.FrequencyQuarterly:
		return amount * 4
	case domain.FrequencyYearly:
		return amount
	case domain.FrequencyOneTime:
		return amount
	default:
		return amount
	}
}
