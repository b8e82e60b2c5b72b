package finance

import (
	"math"
	"testing"

	"github.com/koboapp/kobo/internal/domain"
)

func ngn(amount string, freq domain.Frequency) Entry {
	return Entry{Amount: amount, Frequency: freq, Currency: domain.CurrencyNGN}
}

func TestMonthlyTotal(t *testing.T) {
	conv := NewConverter(domain.CurrencyNGN, 1550)

	entries := []Entry{
		ngn("1000", domain.FrequencyMonthly),
		ngn("1200", domain.FrequencyYearly),                                                // +100
		{Amount: "2", Frequency: domain.FrequencyMonthly, Currency: domain.CurrencyUSD},    // +3100
		ngn("9999", domain.FrequencyOneTime),                                               // excluded
		{Amount: "10", Frequency: domain.FrequencyHourly, WorkHours: true, Currency: domain.CurrencyNGN}, // +1760
	}

	got := MonthlyTotal(conv, entries)
	want := 1000.0 + 100 + 3100 + 1760
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("MonthlyTotal = %v, want %v", got, want)
	}
}

func TestMonthlyTotal_MalformedAmountContributesZero(t *testing.T) {
	conv := NewConverter(domain.CurrencyNGN, 1550)

	clean := []Entry{
		ngn("100", domain.FrequencyMonthly),
		ngn("0", domain.FrequencyMonthly),
		ngn("50", domain.FrequencyMonthly),
	}
	dirty := []Entry{
		ngn("100", domain.FrequencyMonthly),
		ngn("not-a-number", domain.FrequencyMonthly),
		ngn("50", domain.FrequencyMonthly),
	}

	if MonthlyTotal(conv, clean) != MonthlyTotal(conv, dirty) {
		t.Errorf("malformed amount must behave exactly like zero: %v vs %v",
			MonthlyTotal(conv, clean), MonthlyTotal(conv, dirty))
	}
}

func TestNewCashFlow(t *testing.T) {
	conv := NewConverter(domain.CurrencyNGN, 1550)

	cf := NewCashFlow(conv,
		[]Entry{ngn("300000", domain.FrequencyMonthly)},
		[]Entry{ngn("80000", domain.FrequencyMonthly)},
		[]Entry{ngn("60000", domain.FrequencyYearly)}, // 5000/month
		[]Entry{ngn("50000", domain.FrequencyMonthly)},
	)

	if cf.Income != 300000 {
		t.Errorf("income = %v, want 300000", cf.Income)
	}
	wantNet := 300000.0 - (80000 + 5000 + 50000)
	if math.Abs(cf.Net-wantNet) > 1e-9 {
		t.Errorf("net = %v, want %v", cf.Net, wantNet)
	}

	rate, ok := cf.SavingsRate()
	if !ok {
		t.Fatal("savings rate should be defined with positive income")
	}
	wantRate := 50000.0 / 300000 * 100
	if math.Abs(rate-wantRate) > 1e-9 {
		t.Errorf("savings rate = %v, want %v", rate, wantRate)
	}
}

func TestSavingsRate_UndefinedWithZeroIncome(t *testing.T) {
	conv := NewConverter(domain.CurrencyNGN, 1550)

	cf := NewCashFlow(conv,
		nil,
		nil,
		nil,
		[]Entry{ngn("50000", domain.FrequencyMonthly)},
	)

	if _, ok := cf.SavingsRate(); ok {
		t.Error("savings rate must be omitted when income is zero, even with positive savings")
	}
}

func TestTotalAssetsAndNetWorth(t *testing.T) {
	conv := NewConverter(domain.CurrencyNGN, 1550)

	balances := []Balance{
		{Amount: "500000", Currency: domain.CurrencyNGN, Label: "Emergency"},
		{Amount: "100", Currency: domain.CurrencyUSD, Label: "Domiciliary"}, // 155000
		// Balances are point-in-time; no frequency normalization applies.
	}

	assets := TotalAssets(conv, balances)
	if assets != 655000 {
		t.Errorf("total assets = %v, want 655000", assets)
	}

	cf := NewCashFlow(conv, []Entry{ngn("100000", domain.FrequencyMonthly)}, nil, nil, nil)
	if got := NetWorth(assets, cf); got != 755000 {
		t.Errorf("net worth = %v, want assets + net cash flow = 755000", got)
	}
}

func TestBreakdown(t *testing.T) {
	conv := NewConverter(domain.CurrencyNGN, 1550)

	entries := []Entry{
		{Amount: "100", Frequency: domain.FrequencyMonthly, Currency: domain.CurrencyNGN, Label: "Groceries"},
		{Amount: "40", Frequency: domain.FrequencyMonthly, Currency: domain.CurrencyNGN, Label: "Transport"},
		{Amount: "200", Frequency: domain.FrequencyMonthly, Currency: domain.CurrencyNGN, Label: "Groceries"},
	}

	groups := Breakdown(conv, entries)
	if len(groups) != 2 {
		t.Fatalf("group count = %d, want 2", len(groups))
	}

	// First-seen order.
	if groups[0].Label != "Groceries" || groups[1].Label != "Transport" {
		t.Errorf("group order = [%s, %s], want first-seen [Groceries, Transport]",
			groups[0].Label, groups[1].Label)
	}
	if groups[0].Amount != 300 {
		t.Errorf("groceries total = %v, want 300", groups[0].Amount)
	}

	SortGroupsDesc(groups)
	if groups[0].Label != "Groceries" {
		t.Errorf("after sort, top group = %s, want Groceries", groups[0].Label)
	}
}

func TestTotalsByCurrency(t *testing.T) {
	balances := []Balance{
		{Amount: "1000", Currency: domain.CurrencyNGN},
		{Amount: "250.50", Currency: domain.CurrencyUSD},
		{Amount: "garbage", Currency: domain.CurrencyNGN}, // counts as zero
		{Amount: "500", Currency: domain.CurrencyNGN},
	}

	totals := TotalsByCurrency(balances)
	if totals[domain.CurrencyNGN] != 1500 {
		t.Errorf("NGN total = %v, want 1500", totals[domain.CurrencyNGN])
	}
	if totals[domain.CurrencyUSD] != 250.50 {
		t.Errorf("USD total = %v, want 250.50", totals[domain.CurrencyUSD])
	}
}

func TestYearlyTotal_IncludesOneTime(t *testing.T) {
	conv := NewConverter(domain.CurrencyNGN, 1550)

	entries := []Entry{
		ngn("100", domain.FrequencyMonthly), // 1200
		ngn("5000", domain.FrequencyOneTime),
	}

	if got := YearlyTotal(conv, entries); got != 6200 {
		t.Errorf("YearlyTotal = %v, want 6200", got)
	}
}
