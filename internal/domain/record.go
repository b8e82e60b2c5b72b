package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income represents a recurring or one-time income source.
type Income struct {
	ID          string
	UserID      string
	Name        string
	Amount      decimal.Decimal
	Frequency   Frequency
	IsWorkHours bool
	Currency    Currency
	Type        IncomeType
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Expense represents a recurring or one-time expense.
type Expense struct {
	ID        string
	UserID    string
	Name      string
	Amount    decimal.Decimal
	Frequency Frequency
	Currency  Currency
	Category  ExpenseCategory
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subscription represents a recurring subscription payment.
type Subscription struct {
	ID              string
	UserID          string
	Name            string
	Amount          decimal.Decimal
	Frequency       Frequency
	Currency        Currency
	NextPaymentDate time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SavingsAccount holds a point-in-time balance plus optional
// contribution/interest parameters for forecasting.
type SavingsAccount struct {
	ID                  string
	UserID              string
	Name                string
	Balance             decimal.Decimal
	Currency            Currency
	MonthlyContribution decimal.Decimal
	InterestRatePct     decimal.Decimal
	LastUpdated         time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// SavingsAllocation represents money routed into savings on a cadence.
// SavingsAccountID is empty when the allocation is not tied to an account.
type SavingsAllocation struct {
	ID               string
	UserID           string
	Name             string
	Amount           decimal.Decimal
	Frequency        Frequency
	Currency         Currency
	SavingsAccountID string
	Date             time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
