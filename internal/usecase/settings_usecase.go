package usecase

import (
	"context"

	"github.com/koboapp/kobo/internal/domain"
)

// SettingsUseCase manages per-user reminder settings.
type SettingsUseCase struct {
	settingsRepo SettingsRepository
}

// NewSettingsUseCase creates a new SettingsUseCase.
func NewSettingsUseCase(settingsRepo SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo}
}

// SettingsInput carries the updatable settings fields.
type SettingsInput struct {
	Email             string
	ReminderFrequency domain.ReminderFrequency
}

func (in SettingsInput) validate() error {
	if err := domain.ValidateEmail(in.Email); err != nil {
		return err
	}
	if !in.ReminderFrequency.IsValid() {
		return domain.ErrInvalidReminder
	}
	return nil
}

// Get returns the settings for a user.
func (uc *SettingsUseCase) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	return uc.settingsRepo.GetByUser(ctx, userID)
}

// Update replaces the user's reminder settings.
func (uc *SettingsUseCase) Update(ctx context.Context, userID string, input SettingsInput) (*domain.UserSettings, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	settings, err := uc.settingsRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings.Email = input.Email
	settings.ReminderFrequency = input.ReminderFrequency

	if err := uc.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
