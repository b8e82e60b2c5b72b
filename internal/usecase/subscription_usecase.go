package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/metrics"
)

// SubscriptionUseCase handles subscription business logic.
type SubscriptionUseCase struct {
	subRepo SubscriptionRepository
	idGen   IDGenerator
}

// NewSubscriptionUseCase creates a new SubscriptionUseCase.
func NewSubscriptionUseCase(subRepo SubscriptionRepository, idGen IDGenerator) *SubscriptionUseCase {
	return &SubscriptionUseCase{
		subRepo: subRepo,
		idGen:   idGen,
	}
}

// SubscriptionInput represents input for creating or updating a subscription.
type SubscriptionInput struct {
	Name            string
	Amount          decimal.Decimal
	Frequency       domain.Frequency
	Currency        domain.Currency
	NextPaymentDate time.Time
}

func (in SubscriptionInput) validate() error {
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

// Create creates a new subscription owned by userID.
func (uc *SubscriptionUseCase) Create(ctx context.Context, userID string, input SubscriptionInput) (*domain.Subscription, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub := &domain.Subscription{
		ID:              uc.idGen.Generate(),
		UserID:          userID,
		Name:            input.Name,
		Amount:          input.Amount,
		Frequency:       input.Frequency,
		Currency:        input.Currency,
		NextPaymentDate: input.NextPaymentDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	metrics.RecordCreated("subscription")

	return sub, nil
}

// Get retrieves a subscription owned by userID.
func (uc *SubscriptionUseCase) Get(ctx context.Context, userID, id string) (*domain.Subscription, error) {
	return uc.subRepo.GetByID(ctx, userID, id)
}

// List lists all subscriptions owned by userID.
func (uc *SubscriptionUseCase) List(ctx context.Context, userID string) ([]*domain.Subscription, error) {
	return uc.subRepo.ListByUser(ctx, userID)
}

// Update replaces the mutable fields of a subscription owned by userID.
func (uc *SubscriptionUseCase) Update(ctx context.Context, userID, id string, input SubscriptionInput) (*domain.Subscription, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	sub, err := uc.subRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	sub.Name = input.Name
	sub.Amount = input.Amount
	sub.Frequency = input.Frequency
	sub.Currency = input.Currency
	sub.NextPaymentDate = input.NextPaymentDate
	sub.UpdatedAt = time.Now().UTC()

	if err := uc.subRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// Delete removes a subscription owned by userID.
func (uc *SubscriptionUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.subRepo.Delete(ctx, userID, id)
}
