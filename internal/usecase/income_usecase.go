package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/metrics"
)

// IncomeUseCase handles income business logic.
type IncomeUseCase struct {
	incomeRepo IncomeRepository
	idGen      IDGenerator
}

// NewIncomeUseCase creates a new IncomeUseCase.
func NewIncomeUseCase(incomeRepo IncomeRepository, idGen IDGenerator) *IncomeUseCase {
	return &IncomeUseCase{
		incomeRepo: incomeRepo,
		idGen:      idGen,
	}
}

// IncomeInput represents input for creating or updating an income record.
// IsWorkHours only matters for hourly income: it switches normalization
// from round-the-clock hours to an 8h/22-day working month.
type IncomeInput struct {
	Name        string
	Amount      decimal.Decimal
	Frequency   domain.Frequency
	IsWorkHours bool
	Currency    domain.Currency
	Type        domain.IncomeType
	Date        time.Time
}

func (in IncomeInput) validate() error {
	if err := domain.ValidateName(in.Name); err != nil {
		return err
	}
	if err := domain.ValidateAmount(in.Amount); err != nil {
		return err
	}
	if err := domain.ValidateFrequency(in.Frequency, true); err != nil {
		return err
	}
	if err := domain.ValidateCurrency(in.Currency); err != nil {
		return err
	}
	if !in.Type.IsValid() {
		return domain.ErrInvalidType
	}
	return nil
}

// Create creates a new income record owned by userID.
func (uc *IncomeUseCase) Create(ctx context.Context, userID string, input IncomeInput) (*domain.Income, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	income := &domain.Income{
		ID:          uc.idGen.Generate(),
		UserID:      userID,
		Name:        input.Name,
		Amount:      input.Amount,
		Frequency:   input.Frequency,
		IsWorkHours: input.IsWorkHours && input.Frequency == domain.FrequencyHourly,
		Currency:    input.Currency,
		Type:        input.Type,
		Date:        input.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, err
	}

	metrics.RecordCreated("income")

	return income, nil
}

// Get retrieves an income record owned by userID.
func (uc *IncomeUseCase) Get(ctx context.Context, userID, id string) (*domain.Income, error) {
	return uc.incomeRepo.GetByID(ctx, userID, id)
}

// List lists all income records owned by userID.
func (uc *IncomeUseCase) List(ctx context.Context, userID string) ([]*domain.Income, error) {
	return uc.incomeRepo.ListByUser(ctx, userID)
}

// Update replaces the mutable fields of an income record owned by userID.
func (uc *IncomeUseCase) Update(ctx context.Context, userID, id string, input IncomeInput) (*domain.Income, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	income, err := uc.incomeRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	income.Name = input.Name
	income.Amount = input.Amount
	income.Frequency = input.Frequency
	income.IsWorkHours = input.IsWorkHours && input.Frequency == domain.FrequencyHourly
	income.Currency = input.Currency
	income.Type = input.Type
	income.Date = input.Date
	income.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, err
	}

	return income, nil
}

// Delete removes an income record owned by userID.
func (uc *IncomeUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.incomeRepo.Delete(ctx, userID, id)
}
