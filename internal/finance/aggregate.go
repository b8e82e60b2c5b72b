package finance

import (
	"sort"

	"github.com/koboapp/kobo/internal/domain"
)

// Entry is the slice of a cash-flow record that the aggregation engine
// cares about. Amount stays in its at-rest decimal string form; parsing
// happens inside the aggregation so one malformed record degrades to zero
// instead of failing the whole view.
type Entry struct {
	Amount    string
	Frequency domain.Frequency
	WorkHours bool
	Currency  domain.Currency
	Label     string
}

// Balance is a point-in-time amount, not frequency-normalized.
type Balance struct {
	Amount   string
	Currency domain.Currency
	Label    string
}

// Group is one slice of a breakdown view.
type Group struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// MonthlyTotal sums the monthly-equivalent, display-converted amounts of
// the given entries.
func MonthlyTotal(conv Converter, entries []Entry) float64 {
	total := 0.0
	for _, e := range entries {
		monthly := MonthlyAmount(ParseAmount(e.Amount), e.Frequency, e.WorkHours)
		total += conv.Convert(monthly, e.Currency)
	}
	return total
}

// YearlyTotal sums the yearly-equivalent, display-converted amounts of the
// given entries. One-time entries count once here.
func YearlyTotal(conv Converter, entries []Entry) float64 {
	total := 0.0
	for _, e := range entries {
		yearly := YearlyAmount(ParseAmount(e.Amount), e.Frequency, e.WorkHours)
		total += conv.Convert(yearly, e.Currency)
	}
	return total
}

// CashFlow holds the monthly cash-flow decomposition.
type CashFlow struct {
	Income        float64
	Expenses      float64
	Subscriptions float64
	Allocations   float64
	Net           float64
}

// NewCashFlow computes monthly income minus all monthly outflows.
func NewCashFlow(conv Converter, income, expenses, subscriptions, allocations []Entry) CashFlow {
	cf := CashFlow{
		Income:        MonthlyTotal(conv, income),
		Expenses:      MonthlyTotal(conv, expenses),
		Subscriptions: MonthlyTotal(conv, subscriptions),
		Allocations:   MonthlyTotal(conv, allocations),
	}
	cf.Net = cf.Income - (cf.Expenses + cf.Subscriptions + cf.Allocations)
	return cf
}

// SavingsRate returns monthly allocations as a percentage of monthly
// income. The second return is false when income is zero or negative; the
// metric is undefined then and views must omit it rather than divide.
func (cf CashFlow) SavingsRate() (float64, bool) {
	if cf.Income <= 0 {
		return 0, false
	}
	return cf.Allocations / cf.Income * 100, true
}

// TotalAssets sums display-converted balances. Balances are point-in-time
// totals and are never frequency-normalized.
func TotalAssets(conv Converter, balances []Balance) float64 {
	total := 0.0
	for _, b := range balances {
		total += conv.Convert(ParseAmount(b.Amount), b.Currency)
	}
	return total
}

// NetWorth combines total assets with the projected monthly net cash flow.
func NetWorth(totalAssets float64, cf CashFlow) float64 {
	return totalAssets + cf.Net
}

// Breakdown groups entries by label, summing monthly-equivalent converted
// amounts. Groups come out in first-seen order.
func Breakdown(conv Converter, entries []Entry) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)

	for _, e := range entries {
		monthly := MonthlyAmount(ParseAmount(e.Amount), e.Frequency, e.WorkHours)
		amount := conv.Convert(monthly, e.Currency)

		if i, ok := index[e.Label]; ok {
			groups[i].Amount += amount
			continue
		}
		index[e.Label] = len(groups)
		groups = append(groups, Group{Label: e.Label, Amount: amount})
	}

	return groups
}

// SortGroupsDesc re-sorts a breakdown by value, largest first, for top-N
// displays. The sort is stable so equal groups keep first-seen order.
func SortGroupsDesc(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Amount > groups[j].Amount
	})
}

// TotalsByCurrency sums balances per currency without conversion. Used by
// the savings reminder job, which reports each currency separately.
func TotalsByCurrency(balances []Balance) map[domain.Currency]float64 {
	totals := map[domain.Currency]float64{
		domain.CurrencyNGN: 0,
		domain.CurrencyUSD: 0,
	}
	for _, b := range balances {
		totals[b.Currency] += ParseAmount(b.Amount)
	}
	return totals
}
