package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/metrics"
)

// ExpenseUseCase handles expense business logic.
type ExpenseUseCase struct {
	expenseRepo ExpenseRepository
	idGen       IDGenerator
}

// NewExpenseUseCase creates a new ExpenseUseCase.
func NewExpenseUseCase(expenseRepo ExpenseRepository, idGen IDGenerator) *ExpenseUseCase {
	return &ExpenseUseCase{
		expenseRepo: expenseRepo,
		idGen:       idGen,
	}
}

// ExpenseInput represents input for creating or updating an expense.
type ExpenseInput struct {
	Name      string
	Amount    decimal.Decimal
	Frequency domain.Frequency
	Currency  domain.Currency
	Category  domain.ExpenseCategory
	Date      time.Time
}

func (in ExpenseInput) validate() error {
	if err := domain.ValidateName(in.Name); err != nil {
		return err
	}
	if err := domain.ValidateAmount(in.Amount); err != nil {
		return err
	}
	if err := domain.ValidateFrequency(in.Frequency, false); err != nil {
		return err
	}
	if err := domain.ValidateCurrency(in.Currency); err != nil {
		return err
	}
	if !in.Category.IsValid() {
		return domain.ErrInvalidCategory
	}
	return nil
}

// Create creates a new expense owned by userID.
func (uc *ExpenseUseCase) Create(ctx context.Context, userID string, input ExpenseInput) (*domain.Expense, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expense := &domain.Expense{
		ID:        uc.idGen.Generate(),
		UserID:    userID,
		Name:      input.Name,
		Amount:    input.Amount,
		Frequency: input.Frequency,
		Currency:  input.Currency,
		Category:  input.Category,
		Date:      input.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	metrics.RecordCreated("expense")

	return expense, nil
}

// Get retrieves an expense owned by userID.
func (uc *ExpenseUseCase) Get(ctx context.Context, userID, id string) (*domain.Expense, error) {
	return uc.expenseRepo.GetByID(ctx, userID, id)
}

// List lists all expenses owned by userID.
func (uc *ExpenseUseCase) List(ctx context.Context, userID string) ([]*domain.Expense, error) {
	return uc.expenseRepo.ListByUser(ctx, userID)
}

// Update replaces the mutable fields of an expense owned by userID and
// returns the updated record.
func (uc *ExpenseUseCase) Update(ctx context.Context, userID, id string, input ExpenseInput) (*domain.Expense, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	expense.Name = input.Name
	expense.Amount = input.Amount
	expense.Frequency = input.Frequency
	expense.Currency = input.Currency
	expense.Category = input.Category
	expense.Date = input.Date
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// Delete removes an expense owned by userID.
func (uc *ExpenseUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.expenseRepo.Delete(ctx, userID, id)
}
