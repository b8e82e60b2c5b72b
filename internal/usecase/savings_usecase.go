package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/finance"
	"github.com/koboapp/kobo/internal/metrics"
)

// SavingsUseCase handles savings account business logic, including the
// compound interest forecast for a single account.
type SavingsUseCase struct {
	savingsRepo SavingsRepository
	idGen       IDGenerator
}

// NewSavingsUseCase creates a new SavingsUseCase.
func NewSavingsUseCase(savingsRepo SavingsRepository, idGen IDGenerator) *SavingsUseCase {
	return &SavingsUseCase{
		savingsRepo: savingsRepo,
		idGen:       idGen,
	}
}

// SavingsInput represents input for creating or updating a savings account.
// MonthlyContribution and InterestRatePct are optional forecast parameters;
// zero means "not set".
type SavingsInput struct {
	Name                string
	Balance             decimal.Decimal
	Currency            domain.Currency
	MonthlyContribution decimal.Decimal
	InterestRatePct     decimal.Decimal
}

func (in SavingsInput) validate() error {
	if err := domain.ValidateName(in.Name); err != nil {
		return err
	}
	if err := domain.ValidateAmount(in.Balance); err != nil {
		return err
	}
	if err := domain.ValidateAmount(in.MonthlyContribution); err != nil {
		return err
	}
	if in.InterestRatePct.IsNegative() {
		return domain.ErrNegativeRate
	}
	return domain.ValidateCurrency(in.Currency)
}

// Create creates a new savings account owned by userID.
func (uc *SavingsUseCase) Create(ctx context.Context, userID string, input SavingsInput) (*domain.SavingsAccount, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.SavingsAccount{
		ID:                  uc.idGen.Generate(),
		UserID:              userID,
		Name:                input.Name,
		Balance:             input.Balance,
		Currency:            input.Currency,
		MonthlyContribution: input.MonthlyContribution,
		InterestRatePct:     input.InterestRatePct,
		LastUpdated:         now,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := uc.savingsRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	metrics.RecordCreated("savings_account")

	return account, nil
}

// Get retrieves a savings account owned by userID.
func (uc *SavingsUseCase) Get(ctx context.Context, userID, id string) (*domain.SavingsAccount, error) {
	return uc.savingsRepo.GetByID(ctx, userID, id)
}

// List lists all savings accounts owned by userID.
func (uc *SavingsUseCase) List(ctx context.Context, userID string) ([]*domain.SavingsAccount, error) {
	return uc.savingsRepo.ListByUser(ctx, userID)
}

// Update replaces the mutable fields of a savings account owned by userID.
// A balance change also refreshes LastUpdated.
func (uc *SavingsUseCase) Update(ctx context.Context, userID, id string, input SavingsInput) (*domain.SavingsAccount, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	account, err := uc.savingsRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if !account.Balance.Equal(input.Balance) {
		account.LastUpdated = now
	}

	account.Name = input.Name
	account.Balance = input.Balance
	account.Currency = input.Currency
	account.MonthlyContribution = input.MonthlyContribution
	account.InterestRatePct = input.InterestRatePct
	account.UpdatedAt = now

	if err := uc.savingsRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Delete removes a savings account owned by userID. Allocations pointing
// at the account are detached by the storage layer, not deleted.
func (uc *SavingsUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.savingsRepo.Delete(ctx, userID, id)
}

// Forecast projects compound growth of an account's balance over the given
// number of years using its stored contribution and interest parameters.
func (uc *SavingsUseCase) Forecast(ctx context.Context, userID, id string, years int) (*finance.CompoundResult, error) {
	account, err := uc.savingsRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	result, err := finance.Project(finance.ProjectionInput{
		Principal:           finance.ParseAmount(account.Balance.String()),
		MonthlyContribution: finance.ParseAmount(account.MonthlyContribution.String()),
		AnnualRatePct:       finance.ParseAmount(account.InterestRatePct.String()),
		Years:               years,
	})
	if err != nil {
		return nil, err
	}

	metrics.ProjectionComputed()

	return result, nil
}
