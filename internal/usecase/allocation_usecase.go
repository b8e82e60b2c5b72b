package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/metrics"
)

// AllocationUseCase handles savings allocation business logic.
type AllocationUseCase struct {
	allocRepo   AllocationRepository
	savingsRepo SavingsRepository
	idGen       IDGenerator
}

// NewAllocationUseCase creates a new AllocationUseCase.
func NewAllocationUseCase(allocRepo AllocationRepository, savingsRepo SavingsRepository, idGen IDGenerator) *AllocationUseCase {
	return &AllocationUseCase{
		allocRepo:   allocRepo,
		savingsRepo: savingsRepo,
		idGen:       idGen,
	}
}

// AllocationInput represents input for creating or updating an allocation.
// SavingsAccountID is optional; when set it must reference one of the
// user's own accounts.
type AllocationInput struct {
	Name             string
	Amount           decimal.Decimal
	Frequency        domain.Frequency
	Currency         domain.Currency
	SavingsAccountID string
	Date             time.Time
}

func (in AllocationInput) validate() error {
	if err := domain.ValidateName(in.Name); err != nil {
		return err
	}
	if err := domain.ValidateAmount(in.Amount); err != nil {
		return err
	}
	if err := domain.ValidateFrequency(in.Frequency, false); err != nil {
		return err
	}
	return domain.ValidateCurrency(in.Currency)
}

func (uc *AllocationUseCase) checkAccount(ctx context.Context, userID, accountID string) error {
	if accountID == "" {
		return nil
	}
	_, err := uc.savingsRepo.GetByID(ctx, userID, accountID)
	return err
}

// Create creates a new savings allocation owned by userID.
func (uc *AllocationUseCase) Create(ctx context.Context, userID string, input AllocationInput) (*domain.SavingsAllocation, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if err := uc.checkAccount(ctx, userID, input.SavingsAccountID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	alloc := &domain.SavingsAllocation{
		ID:               uc.idGen.Generate(),
		UserID:           userID,
		Name:             input.Name,
		Amount:           input.Amount,
		Frequency:        input.Frequency,
		Currency:         input.Currency,
		SavingsAccountID: input.SavingsAccountID,
		Date:             input.Date,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.allocRepo.Create(ctx, alloc); err != nil {
		return nil, err
	}

	metrics.RecordCreated("savings_allocation")

	return alloc, nil
}

// Get retrieves an allocation owned by userID.
func (uc *AllocationUseCase) Get(ctx context.Context, userID, id string) (*domain.SavingsAllocation, error) {
	return uc.allocRepo.GetByID(ctx, userID, id)
}

// List lists all allocations owned by userID.
func (uc *AllocationUseCase) List(ctx context.Context, userID string) ([]*domain.SavingsAllocation, error) {
	return uc.allocRepo.ListByUser(ctx, userID)
}

// Update replaces the mutable fields of an allocation owned by userID.
func (uc *AllocationUseCase) Update(ctx context.Context, userID, id string, input AllocationInput) (*domain.SavingsAllocation, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if err := uc.checkAccount(ctx, userID, input.SavingsAccountID); err != nil {
		return nil, err
	}

	alloc, err := uc.allocRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	alloc.Name = input.Name
	alloc.Amount = input.Amount
	alloc.Frequency = input.Frequency
	alloc.Currency = input.Currency
	alloc.SavingsAccountID = input.SavingsAccountID
	alloc.Date = input.Date
	alloc.UpdatedAt = time.Now().UTC()

	if err := uc.allocRepo.Update(ctx, alloc); err != nil {
		return nil, err
	}

	return alloc, nil
}

// Delete removes an allocation owned by userID.
func (uc *AllocationUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.allocRepo.Delete(ctx, userID, id)
}
