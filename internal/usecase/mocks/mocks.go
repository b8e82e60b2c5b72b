// Package mocks provides hand-written test doubles for the usecase
// interfaces. Each mock delegates to an optional Func field; unset fields
// fall back to a simple in-memory default so tests only wire what they
// assert.
package mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/rates"
	"github.com/koboapp/kobo/internal/usecase"
)

// MockIncomeRepository is a mock implementation of IncomeRepository.
type MockIncomeRepository struct {
	CreateFunc     func(ctx context.Context, income *domain.Income) error
	GetByIDFunc    func(ctx context.Context, userID, id string) (*domain.Income, error)
	UpdateFunc     func(ctx context.Context, income *domain.Income) error
	DeleteFunc     func(ctx context.Context, userID, id string) error
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.Income, error)
}

func (m *MockIncomeRepository) Create(ctx context.Context, income *domain.Income) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, income)
	}
	return nil
}

func (m *MockIncomeRepository) GetByID(ctx context.Context, userID, id string) (*domain.Income, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, id)
	}
	return nil, domain.ErrIncomeNotFound
}

func (m *MockIncomeRepository) Update(ctx context.Context, income *domain.Income) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, income)
	}
	return nil
}

func (m *MockIncomeRepository) Delete(ctx context.Context, userID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

func (m *MockIncomeRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Income, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

// MockExpenseRepository is a mock implementation of ExpenseRepository.
type MockExpenseRepository struct {
	CreateFunc     func(ctx context.Context, expense *domain.Expense) error
	GetByIDFunc    func(ctx context.Context, userID, id string) (*domain.Expense, error)
	UpdateFunc     func(ctx context.Context, expense *domain.Expense) error
	DeleteFunc     func(ctx context.Context, userID, id string) error
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.Expense, error)
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, expense)
	}
	return nil
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, userID, id string) (*domain.Expense, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, id)
	}
	return nil, domain.ErrExpenseNotFound
}

func (m *MockExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, expense)
	}
	return nil
}

func (m *MockExpenseRepository) Delete(ctx context.Context, userID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

func (m *MockExpenseRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Expense, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

// MockSubscriptionRepository is a mock implementation of SubscriptionRepository.
type MockSubscriptionRepository struct {
	CreateFunc     func(ctx context.Context, sub *domain.Subscription) error
	GetByIDFunc    func(ctx context.Context, userID, id string) (*domain.Subscription, error)
	UpdateFunc     func(ctx context.Context, sub *domain.Subscription) error
	DeleteFunc     func(ctx context.Context, userID, id string) error
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.Subscription, error)
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sub)
	}
	return nil
}

func (m *MockSubscriptionRepository) GetByID(ctx context.Context, userID, id string) (*domain.Subscription, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, id)
	}
	return nil, domain.ErrSubscriptionNotFound
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, sub *domain.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	return nil
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, userID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

func (m *MockSubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Subscription, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

// MockSavingsRepository is a mock implementation of SavingsRepository.
type MockSavingsRepository struct {
	CreateFunc        func(ctx context.Context, account *domain.SavingsAccount) error
	GetByIDFunc       func(ctx context.Context, userID, id string) (*domain.SavingsAccount, error)
	UpdateFunc        func(ctx context.Context, account *domain.SavingsAccount) error
	UpdateBalanceFunc func(ctx context.Context, userID, id string, balance decimal.Decimal, updatedAt time.Time) error
	DeleteFunc        func(ctx context.Context, userID, id string) error
	ListByUserFunc    func(ctx context.Context, userID string) ([]*domain.SavingsAccount, error)
}

func (m *MockSavingsRepository) Create(ctx context.Context, account *domain.SavingsAccount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	return nil
}

func (m *MockSavingsRepository) GetByID(ctx context.Context, userID, id string) (*domain.SavingsAccount, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, id)
	}
	return nil, domain.ErrSavingsNotFound
}

func (m *MockSavingsRepository) Update(ctx context.Context, account *domain.SavingsAccount) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	return nil
}

func (m *MockSavingsRepository) UpdateBalance(ctx context.Context, userID, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, userID, id, balance, updatedAt)
	}
	return nil
}

func (m *MockSavingsRepository) Delete(ctx context.Context, userID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

func (m *MockSavingsRepository) ListByUser(ctx context.Context, userID string) ([]*domain.SavingsAccount, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

// MockAllocationRepository is a mock implementation of AllocationRepository.
type MockAllocationRepository struct {
	CreateFunc     func(ctx context.Context, alloc *domain.SavingsAllocation) error
	GetByIDFunc    func(ctx context.Context, userID, id string) (*domain.SavingsAllocation, error)
	UpdateFunc     func(ctx context.Context, alloc *domain.SavingsAllocation) error
	DeleteFunc     func(ctx context.Context, userID, id string) error
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.SavingsAllocation, error)
}

func (m *MockAllocationRepository) Create(ctx context.Context, alloc *domain.SavingsAllocation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, alloc)
	}
	return nil
}

func (m *MockAllocationRepository) GetByID(ctx context.Context, userID, id string) (*domain.SavingsAllocation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, id)
	}
	return nil, domain.ErrAllocationNotFound
}

func (m *MockAllocationRepository) Update(ctx context.Context, alloc *domain.SavingsAllocation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, alloc)
	}
	return nil
}

func (m *MockAllocationRepository) Delete(ctx context.Context, userID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

func (m *MockAllocationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.SavingsAllocation, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

// MockSettingsRepository is a mock implementation of SettingsRepository.
type MockSettingsRepository struct {
	CreateTxFunc       func(ctx context.Context, tx usecase.Transaction, settings *domain.UserSettings) error
	GetByUserFunc      func(ctx context.Context, userID string) (*domain.UserSettings, error)
	UpdateFunc         func(ctx context.Context, settings *domain.UserSettings) error
	ListRecipientsFunc func(ctx context.Context, frequencies []domain.ReminderFrequency) ([]*usecase.ReminderRecipient, error)
}

func (m *MockSettingsRepository) CreateTx(ctx context.Context, tx usecase.Transaction, settings *domain.UserSettings) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, settings)
	}
	return nil
}

func (m *MockSettingsRepository) GetByUser(ctx context.Context, userID string) (*domain.UserSettings, error) {
	if m.GetByUserFunc != nil {
		return m.GetByUserFunc(ctx, userID)
	}
	return nil, domain.ErrSettingsNotFound
}

func (m *MockSettingsRepository) Update(ctx context.Context, settings *domain.UserSettings) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, settings)
	}
	return nil
}

func (m *MockSettingsRepository) ListRecipients(ctx context.Context, frequencies []domain.ReminderFrequency) ([]*usecase.ReminderRecipient, error) {
	if m.ListRecipientsFunc != nil {
		return m.ListRecipientsFunc(ctx, frequencies)
	}
	return nil, nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	CreateTxFunc   func(ctx context.Context, tx usecase.Transaction, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	UpdateFunc     func(ctx context.Context, user *domain.User) error
}

func (m *MockUserRepository) CreateTx(ctx context.Context, tx usecase.Transaction, user *domain.User) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, user)
	}
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	m.Committed = true
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	m.RolledBack = true
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockRetrier runs the operation once unless RetryFunc is set.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIDGenerator returns IDs from a fixed sequence, then "test-id".
type MockIDGenerator struct {
	IDs  []string
	next int
}

func (m *MockIDGenerator) Generate() string {
	if m.next < len(m.IDs) {
		id := m.IDs[m.next]
		m.next++
		return id
	}
	return "test-id"
}

// MockRateSource serves a fixed snapshot.
type MockRateSource struct {
	Snapshot rates.Snapshot
}

func (m *MockRateSource) Get(ctx context.Context) rates.Snapshot {
	return m.Snapshot
}

// MockMailer records every reminder mail it is asked to send.
type MockMailer struct {
	SendFunc func(ctx context.Context, mail usecase.ReminderMail) error
	Sent     []usecase.ReminderMail
}

func (m *MockMailer) SendSavingsReminder(ctx context.Context, mail usecase.ReminderMail) error {
	if m.SendFunc != nil {
		if err := m.SendFunc(ctx, mail); err != nil {
			return err
		}
	}
	m.Sent = append(m.Sent, mail)
	return nil
}
