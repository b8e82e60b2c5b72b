package usecase

import (
	"context"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/finance"
)

// DashboardUseCase composes the aggregation views into the dashboard
// overview. Every figure is a derived view over the finance engine; nothing
// here mutates state.
type DashboardUseCase struct {
	incomeRepo  IncomeRepository
	expenseRepo ExpenseRepository
	subRepo     SubscriptionRepository
	allocRepo   AllocationRepository
	savingsRepo SavingsRepository
	rateSource  RateSource
}

// NewDashboardUseCase creates a new DashboardUseCase.
func NewDashboardUseCase(
	incomeRepo IncomeRepository,
	expenseRepo ExpenseRepository,
	subRepo SubscriptionRepository,
	allocRepo AllocationRepository,
	savingsRepo SavingsRepository,
	rateSource RateSource,
) *DashboardUseCase {
	return &DashboardUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		subRepo:     subRepo,
		allocRepo:   allocRepo,
		savingsRepo: savingsRepo,
		rateSource:  rateSource,
	}
}

// Overview is the full dashboard view in one display currency.
// SavingsRate is nil when monthly income is zero: the metric is undefined
// then and must be hidden, not rendered as NaN.
type Overview struct {
	DisplayCurrency      domain.Currency
	MonthlyIncome        float64
	MonthlyExpenses      float64
	MonthlySubscriptions float64
	MonthlyAllocations   float64
	NetCashFlow          float64
	SavingsRate          *float64
	TotalAssets          float64
	NetWorth             float64

	IncomeSources   int
	ExpenseCount    int
	Subscriptions   int
	SavingsAccounts int

	IncomeBreakdown       []finance.Group
	ExpenseBreakdown      []finance.Group
	SubscriptionBreakdown []finance.Group
	AllocationBreakdown   []finance.Group
}

// Overview computes the dashboard for one user in the given display
// currency. Switching the display currency is just another call with a
// different parameter; no stored record changes.
func (uc *DashboardUseCase) Overview(ctx context.Context, userID string, display domain.Currency) (*Overview, error) {
	if err := domain.ValidateCurrency(display); err != nil {
		return nil, err
	}

	income, err := uc.incomeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	subs, err := uc.subRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	allocs, err := uc.allocRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	accounts, err := uc.savingsRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := uc.rateSource.Get(ctx)
	conv := finance.NewConverter(display, snapshot.NGN)

	incomeEntries := finance.IncomeEntries(income)
	expenseEntries := finance.ExpenseEntries(expenses)
	subEntries := finance.SubscriptionEntries(subs)
	allocEntries := finance.AllocationEntries(allocs)

	cf := finance.NewCashFlow(conv, incomeEntries, expenseEntries, subEntries, allocEntries)
	assets := finance.TotalAssets(conv, finance.AccountBalances(accounts))

	view := &Overview{
		DisplayCurrency:      display,
		MonthlyIncome:        finance.Round2(cf.Income),
		MonthlyExpenses:      finance.Round2(cf.Expenses),
		MonthlySubscriptions: finance.Round2(cf.Subscriptions),
		MonthlyAllocations:   finance.Round2(cf.Allocations),
		NetCashFlow:          finance.Round2(cf.Net),
		TotalAssets:          finance.Round2(assets),
		NetWorth:             finance.Round2(finance.NetWorth(assets, cf)),

		IncomeSources:   len(income),
		ExpenseCount:    len(expenses),
		Subscriptions:   len(subs),
		SavingsAccounts: len(accounts),

		IncomeBreakdown:       topGroups(conv, incomeEntries),
		ExpenseBreakdown:      topGroups(conv, expenseEntries),
		SubscriptionBreakdown: topGroups(conv, subEntries),
		AllocationBreakdown:   topGroups(conv, allocEntries),
	}

	if rate, ok := cf.SavingsRate(); ok {
		rounded := finance.Round2(rate)
		view.SavingsRate = &rounded
	}

	return view, nil
}

// topGroups builds a breakdown and re-sorts it by value for display.
func topGroups(conv finance.Converter, entries []finance.Entry) []finance.Group {
	groups := finance.Breakdown(conv, entries)
	for i := range groups {
		groups[i].Amount = finance.Round2(groups[i].Amount)
	}
	finance.SortGroupsDesc(groups)
	return groups
}
