package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/finance"
	"github.com/koboapp/kobo/internal/usecase"
)

// RegisterRequest represents a request to register a new user.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *LoginRequest) ToUseCaseInput() usecase.AuthenticateInput {
	return usecase.AuthenticateInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// ExpenseRequest represents a request to create or update an expense.
type ExpenseRequest struct {
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency string          `json:"frequency"`
	Currency  string          `json:"currency"`
	Category  string          `json:"category"`
	Date      time.Time       `json:"date"`
}

// ToUseCaseInput converts to use case input.
func (r *ExpenseRequest) ToUseCaseInput() usecase.ExpenseInput {
	return usecase.ExpenseInput{
		Name:      r.Name,
		Amount:    r.Amount,
		Frequency: domain.Frequency(r.Frequency),
		Currency:  domain.Currency(r.Currency),
		Category:  domain.ExpenseCategory(r.Category),
		Date:      r.Date,
	}
}

// IncomeRequest represents a request to create or update an income record.
type IncomeRequest struct {
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   string          `json:"frequency"`
	IsWorkHours bool            `json:"is_work_hours"`
	Currency    string          `json:"currency"`
	Type        string          `json:"type"`
	Date        time.Time       `json:"date"`
}

// ToUseCaseInput converts to use case input.
func (r *IncomeRequest) ToUseCaseInput() usecase.IncomeInput {
	return usecase.IncomeInput{
		Name:        r.Name,
		Amount:      r.Amount,
		Frequency:   domain.Frequency(r.Frequency),
		IsWorkHours: r.IsWorkHours,
		Currency:    domain.Currency(r.Currency),
		Type:        domain.IncomeType(r.Type),
		Date:        r.Date,
	}
}

// SubscriptionRequest represents a request to create or update a subscription.
type SubscriptionRequest struct {
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Frequency       string          `json:"frequency"`
	Currency        string          `json:"currency"`
	NextPaymentDate time.Time       `json:"next_payment_date"`
}

// ToUseCaseInput converts to use case input.
func (r *SubscriptionRequest) ToUseCaseInput() usecase.SubscriptionInput {
	return usecase.SubscriptionInput{
		Name:            r.Name,
		Amount:          r.Amount,
		Frequency:       domain.Frequency(r.Frequency),
		Currency:        domain.Currency(r.Currency),
		NextPaymentDate: r.NextPaymentDate,
	}
}

// SavingsAccountRequest represents a request to create or update a savings
// account.
type SavingsAccountRequest struct {
	Name                string          `json:"name"`
	Balance             decimal.Decimal `json:"balance"`
	Currency            string          `json:"currency"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	InterestRatePct     decimal.Decimal `json:"interest_rate_pct"`
}

// ToUseCaseInput converts to use case input.
func (r *SavingsAccountRequest) ToUseCaseInput() usecase.SavingsInput {
	return usecase.SavingsInput{
		Name:                r.Name,
		Balance:             r.Balance,
		Currency:            domain.Currency(r.Currency),
		MonthlyContribution: r.MonthlyContribution,
		InterestRatePct:     r.InterestRatePct,
	}
}

// AllocationRequest represents a request to create or update a savings
// allocation.
type AllocationRequest struct {
	Name             string          `json:"name"`
	Amount           decimal.Decimal `json:"amount"`
	Frequency        string          `json:"frequency"`
	Currency         string          `json:"currency"`
	SavingsAccountID string          `json:"savings_account_id,omitempty"`
	Date             time.Time       `json:"date"`
}

// ToUseCaseInput converts to use case input.
func (r *AllocationRequest) ToUseCaseInput() usecase.AllocationInput {
	return usecase.AllocationInput{
		Name:             r.Name,
		Amount:           r.Amount,
		Frequency:        domain.Frequency(r.Frequency),
		Currency:         domain.Currency(r.Currency),
		SavingsAccountID: r.SavingsAccountID,
		Date:             r.Date,
	}
}

// SettingsRequest represents a request to update reminder settings.
type SettingsRequest struct {
	Email             string `json:"email"`
	ReminderFrequency string `json:"reminder_frequency"`
}

// ToUseCaseInput converts to use case input.
func (r *SettingsRequest) ToUseCaseInput() usecase.SettingsInput {
	return usecase.SettingsInput{
		Email:             r.Email,
		ReminderFrequency: domain.ReminderFrequency(r.ReminderFrequency),
	}
}

// CompoundRequest represents a standalone compound interest calculation.
type CompoundRequest struct {
	Principal           float64 `json:"principal"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualRatePct       float64 `json:"annual_rate_pct"`
	Years               int     `json:"years"`
}

// ToProjectionInput converts to a finance projection input.
func (r *CompoundRequest) ToProjectionInput() finance.ProjectionInput {
	return finance.ProjectionInput{
		Principal:           r.Principal,
		MonthlyContribution: r.MonthlyContribution,
		AnnualRatePct:       r.AnnualRatePct,
		Years:               r.Years,
	}
}
