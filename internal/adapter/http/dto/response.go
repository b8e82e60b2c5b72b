package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/finance"
	"github.com/koboapp/kobo/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// LoginResponse represents a successful authentication.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency string          `json:"frequency"`
	Currency  string          `json:"currency"`
	Category  string          `json:"category"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ExpenseFromDomain converts a domain expense to a response.
func ExpenseFromDomain(e *domain.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:        e.ID,
		Name:      e.Name,
		Amount:    e.Amount,
		Frequency: string(e.Frequency),
		Currency:  string(e.Currency),
		Category:  string(e.Category),
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ExpensesFromDomain converts domain expenses to responses.
func ExpensesFromDomain(expenses []*domain.Expense) []*ExpenseResponse {
	result := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		result[i] = ExpenseFromDomain(e)
	}
	return result
}

// IncomeResponse represents an income record in API responses.
type IncomeResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   string          `json:"frequency"`
	IsWorkHours bool            `json:"is_work_hours"`
	Currency    string          `json:"currency"`
	Type        string          `json:"type"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IncomeFromDomain converts a domain income record to a response.
func IncomeFromDomain(in *domain.Income) *IncomeResponse {
	return &IncomeResponse{
		ID:          in.ID,
		Name:        in.Name,
		Amount:      in.Amount,
		Frequency:   string(in.Frequency),
		IsWorkHours: in.IsWorkHours,
		Currency:    string(in.Currency),
		Type:        string(in.Type),
		Date:        in.Date,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

// IncomesFromDomain converts domain income records to responses.
func IncomesFromDomain(incomes []*domain.Income) []*IncomeResponse {
	result := make([]*IncomeResponse, len(incomes))
	for i, in := range incomes {
		result[i] = IncomeFromDomain(in)
	}
	return result
}

// SubscriptionResponse represents a subscription in API responses.
type SubscriptionResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Frequency       string          `json:"frequency"`
	Currency        string          `json:"currency"`
	NextPaymentDate time.Time       `json:"next_payment_date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// SubscriptionFromDomain converts a domain subscription to a response.
func SubscriptionFromDomain(s *domain.Subscription) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:              s.ID,
		Name:            s.Name,
		Amount:          s.Amount,
		Frequency:       string(s.Frequency),
		Currency:        string(s.Currency),
		NextPaymentDate: s.NextPaymentDate,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// SubscriptionsFromDomain converts domain subscriptions to responses.
func SubscriptionsFromDomain(subs []*domain.Subscription) []*SubscriptionResponse {
	result := make([]*SubscriptionResponse, len(subs))
	for i, s := range subs {
		result[i] = SubscriptionFromDomain(s)
	}
	return result
}

// SavingsAccountResponse represents a savings account in API responses.
type SavingsAccountResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Balance             decimal.Decimal `json:"balance"`
	Currency            string          `json:"currency"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	InterestRatePct     decimal.Decimal `json:"interest_rate_pct"`
	LastUpdated         time.Time       `json:"last_updated"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// SavingsAccountFromDomain converts a domain savings account to a response.
func SavingsAccountFromDomain(a *domain.SavingsAccount) *SavingsAccountResponse {
	return &SavingsAccountResponse{
		ID:                  a.ID,
		Name:                a.Name,
		Balance:             a.Balance,
		Currency:            string(a.Currency),
		MonthlyContribution: a.MonthlyContribution,
		InterestRatePct:     a.InterestRatePct,
		LastUpdated:         a.LastUpdated,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

// SavingsAccountsFromDomain converts domain savings accounts to responses.
func SavingsAccountsFromDomain(accounts []*domain.SavingsAccount) []*SavingsAccountResponse {
	result := make([]*SavingsAccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = SavingsAccountFromDomain(a)
	}
	return result
}

// AllocationResponse represents a savings allocation in API responses.
type AllocationResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Amount           decimal.Decimal `json:"amount"`
	Frequency        string          `json:"frequency"`
	Currency         string          `json:"currency"`
	SavingsAccountID string          `json:"savings_account_id,omitempty"`
	Date             time.Time       `json:"date"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// AllocationFromDomain converts a domain allocation to a response.
func AllocationFromDomain(a *domain.SavingsAllocation) *AllocationResponse {
	return &AllocationResponse{
		ID:               a.ID,
		Name:             a.Name,
		Amount:           a.Amount,
		Frequency:        string(a.Frequency),
		Currency:         string(a.Currency),
		SavingsAccountID: a.SavingsAccountID,
		Date:             a.Date,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// AllocationsFromDomain converts domain allocations to responses.
func AllocationsFromDomain(allocs []*domain.SavingsAllocation) []*AllocationResponse {
	result := make([]*AllocationResponse, len(allocs))
	for i, a := range allocs {
		result[i] = AllocationFromDomain(a)
	}
	return result
}

// SettingsResponse represents reminder settings in API responses.
type SettingsResponse struct {
	Email             string    `json:"email"`
	ReminderFrequency string    `json:"reminder_frequency"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// SettingsFromDomain converts domain settings to a response.
func SettingsFromDomain(s *domain.UserSettings) *SettingsResponse {
	return &SettingsResponse{
		Email:             s.Email,
		ReminderFrequency: string(s.ReminderFrequency),
		UpdatedAt:         s.UpdatedAt,
	}
}

// DashboardResponse represents the dashboard overview in API responses.
// SavingsRate is omitted when monthly income is zero.
type DashboardResponse struct {
	DisplayCurrency      string   `json:"display_currency"`
	MonthlyIncome        float64  `json:"monthly_income"`
	MonthlyExpenses      float64  `json:"monthly_expenses"`
	MonthlySubscriptions float64  `json:"monthly_subscriptions"`
	MonthlyAllocations   float64  `json:"monthly_allocations"`
	NetCashFlow          float64  `json:"net_cash_flow"`
	SavingsRate          *float64 `json:"savings_rate,omitempty"`
	TotalAssets          float64  `json:"total_assets"`
	NetWorth             float64  `json:"net_worth"`

	IncomeSources   int `json:"income_sources"`
	ExpenseCount    int `json:"expense_count"`
	Subscriptions   int `json:"subscriptions"`
	SavingsAccounts int `json:"savings_accounts"`

	IncomeBreakdown       []finance.Group `json:"income_breakdown"`
	ExpenseBreakdown      []finance.Group `json:"expense_breakdown"`
	SubscriptionBreakdown []finance.Group `json:"subscription_breakdown"`
	AllocationBreakdown   []finance.Group `json:"allocation_breakdown"`
}

// DashboardFromOverview converts a dashboard overview to a response.
func DashboardFromOverview(v *usecase.Overview) *DashboardResponse {
	return &DashboardResponse{
		DisplayCurrency:      string(v.DisplayCurrency),
		MonthlyIncome:        v.MonthlyIncome,
		MonthlyExpenses:      v.MonthlyExpenses,
		MonthlySubscriptions: v.MonthlySubscriptions,
		MonthlyAllocations:   v.MonthlyAllocations,
		NetCashFlow:          v.NetCashFlow,
		SavingsRate:          v.SavingsRate,
		TotalAssets:          v.TotalAssets,
		NetWorth:             v.NetWorth,

		IncomeSources:   v.IncomeSources,
		ExpenseCount:    v.ExpenseCount,
		Subscriptions:   v.Subscriptions,
		SavingsAccounts: v.SavingsAccounts,

		IncomeBreakdown:       v.IncomeBreakdown,
		ExpenseBreakdown:      v.ExpenseBreakdown,
		SubscriptionBreakdown: v.SubscriptionBreakdown,
		AllocationBreakdown:   v.AllocationBreakdown,
	}
}

// ReminderRunResponse reports the outcome of a reminder job run.
type ReminderRunResponse struct {
	Sent int `json:"sent"`
}
