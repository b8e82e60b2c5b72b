package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/rates"
)

// IncomeRepository defines data access for income records.
type IncomeRepository interface {
	Create(ctx context.Context, income *domain.Income) error
	GetByID(ctx context.Context, userID, id string) (*domain.Income, error)
	Update(ctx context.Context, income *domain.Income) error
	Delete(ctx context.Context, userID, id string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Income, error)
}

// ExpenseRepository defines data access for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, userID, id string) (*domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) error
	Delete(ctx context.Context, userID, id string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Expense, error)
}

// SubscriptionRepository defines data access for subscriptions.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) error
	GetByID(ctx context.Context, userID, id string) (*domain.Subscription, error)
	Update(ctx context.Context, sub *domain.Subscription) error
	Delete(ctx context.Context, userID, id string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Subscription, error)
}

// SavingsRepository defines data access for savings accounts.
type SavingsRepository interface {
	Create(ctx context.Context, account *domain.SavingsAccount) error
	GetByID(ctx context.Context, userID, id string) (*domain.SavingsAccount, error)
	Update(ctx context.Context, account *domain.SavingsAccount) error
	UpdateBalance(ctx context.Context, userID, id string, balance decimal.Decimal, updatedAt time.Time) error
	Delete(ctx context.Context, userID, id string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.SavingsAccount, error)
}

// AllocationRepository defines data access for savings allocations.
type AllocationRepository interface {
	Create(ctx context.Context, alloc *domain.SavingsAllocation) error
	GetByID(ctx context.Context, userID, id string) (*domain.SavingsAllocation, error)
	Update(ctx context.Context, alloc *domain.SavingsAllocation) error
	Delete(ctx context.Context, userID, id string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.SavingsAllocation, error)
}

// SettingsRepository defines data access for user reminder settings.
type SettingsRepository interface {
	CreateTx(ctx context.Context, tx Transaction, settings *domain.UserSettings) error
	GetByUser(ctx context.Context, userID string) (*domain.UserSettings, error)
	Update(ctx context.Context, settings *domain.UserSettings) error
	ListRecipients(ctx context.Context, frequencies []domain.ReminderFrequency) ([]*ReminderRecipient, error)
}

// ReminderRecipient is a user due for a savings reminder, with the
// reminder email resolved (settings email overrides the account email).
type ReminderRecipient struct {
	UserID    string
	Name      string
	Email     string
	Frequency domain.ReminderFrequency
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	CreateTx(ctx context.Context, tx Transaction, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient database errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore caches responses of mutating requests by client key.
type IdempotencyStore interface {
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// RateSource supplies the current exchange-rate snapshot.
type RateSource interface {
	Get(ctx context.Context) rates.Snapshot
}

// ReminderMail is one savings reminder email.
type ReminderMail struct {
	To           string
	Name         string
	TotalSavings string
	Accounts     []ReminderAccountLine
}

// ReminderAccountLine is one account row in a reminder email.
type ReminderAccountLine struct {
	Name    string
	Balance string
}

// Mailer sends reminder emails.
type Mailer interface {
	SendSavingsReminder(ctx context.Context, mail ReminderMail) error
}
