package finance

import "github.com/koboapp/kobo/internal/domain"

// Adapters from domain records to aggregation inputs. Labels pick the
// grouping key each record kind breaks down by.

// IncomeEntries maps income records, labeled by income type.
func IncomeEntries(records []*domain.Income) []Entry {
	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{
			Amount:    r.Amount.String(),
			Frequency: r.Frequency,
			WorkHours: r.IsWorkHours,
			Currency:  r.Currency,
			Label:     r.Type.Label(),
		}
	}
	return entries
}

// ExpenseEntries maps expense records, labeled by category.
func ExpenseEntries(records []*domain.Expense) []Entry {
	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{
			Amount:    r.Amount.String(),
			Frequency: r.Frequency,
			Currency:  r.Currency,
			Label:     r.Category.Label(),
		}
	}
	return entries
}

// SubscriptionEntries maps subscriptions, labeled by name.
func SubscriptionEntries(records []*domain.Subscription) []Entry {
	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{
			Amount:    r.Amount.String(),
			Frequency: r.Frequency,
			Currency:  r.Currency,
			Label:     r.Name,
		}
	}
	return entries
}

// AllocationEntries maps savings allocations, labeled by name.
func AllocationEntries(records []*domain.SavingsAllocation) []Entry {
	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{
			Amount:    r.Amount.String(),
			Frequency: r.Frequency,
			Currency:  r.Currency,
			Label:     r.Name,
		}
	}
	return entries
}

// AccountBalances maps savings accounts to point-in-time balances.
func AccountBalances(accounts []*domain.SavingsAccount) []Balance {
	balances := make([]Balance, len(accounts))
	for i, a := range accounts {
		balances[i] = Balance{
			Amount:   a.Balance.String(),
			Currency: a.Currency,
			Label:    a.Name,
		}
	}
	return balances
}
