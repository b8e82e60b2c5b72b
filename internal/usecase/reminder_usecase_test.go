package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/usecase"
	"github.com/koboapp/kobo/internal/usecase/mocks"
)

func TestDueFrequencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		now  time.Time
		want []domain.ReminderFrequency
	}{
		{
			name: "ordinary tuesday",
			now:  time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC),
			want: []domain.ReminderFrequency{domain.ReminderDaily},
		},
		{
			name: "monday adds weekly",
			now:  time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			want: []domain.ReminderFrequency{domain.ReminderDaily, domain.ReminderWeekly},
		},
		{
			name: "first of month adds monthly",
			now:  time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
			want: []domain.ReminderFrequency{domain.ReminderDaily, domain.ReminderMonthly},
		},
		{
			name: "monday the first fires all three",
			now:  time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC),
			want: []domain.ReminderFrequency{domain.ReminderDaily, domain.ReminderWeekly, domain.ReminderMonthly},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := usecase.DueFrequencies(tt.now)
			if len(got) != len(tt.want) {
				t.Fatalf("due frequencies = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("due frequencies = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestReminderUseCase_SendDue(t *testing.T) {
	t.Parallel()

	settingsRepo := &mocks.MockSettingsRepository{
		ListRecipientsFunc: func(context.Context, []domain.ReminderFrequency) ([]*usecase.ReminderRecipient, error) {
			return []*usecase.ReminderRecipient{
				{UserID: "user-1", Name: "Ada", Email: "ada@example.com", Frequency: domain.ReminderDaily},
				{UserID: "user-2", Name: "Bayo", Email: "bayo@example.com", Frequency: domain.ReminderDaily},
			}, nil
		},
	}
	savingsRepo := &mocks.MockSavingsRepository{
		ListByUserFunc: func(_ context.Context, userID string) ([]*domain.SavingsAccount, error) {
			if userID == "user-2" {
				// No accounts: nothing worth reminding about.
				return nil, nil
			}
			return []*domain.SavingsAccount{
				{Name: "Emergency fund", Balance: decimal.NewFromInt(120000), Currency: domain.CurrencyNGN},
				{Name: "Dollar stash", Balance: decimal.NewFromInt(500), Currency: domain.CurrencyUSD},
			}, nil
		},
	}
	mailer := &mocks.MockMailer{}

	uc := usecase.NewReminderUseCase(settingsRepo, savingsRepo, mailer, zerolog.Nop())

	sent, err := uc.SendDue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent != 1 {
		t.Fatalf("sent = %d, want 1", sent)
	}
	if len(mailer.Sent) != 1 {
		t.Fatalf("expected exactly one mail, got %d", len(mailer.Sent))
	}

	mail := mailer.Sent[0]
	if mail.To != "ada@example.com" {
		t.Errorf("mail to = %s, want ada@example.com", mail.To)
	}
	if mail.TotalSavings != "₦120,000.00 + $500.00" {
		t.Errorf("total savings = %q", mail.TotalSavings)
	}
	if len(mail.Accounts) != 2 || mail.Accounts[0].Name != "Emergency fund" {
		t.Errorf("unexpected account lines: %+v", mail.Accounts)
	}
}

func TestReminderUseCase_SendDueContinuesAfterFailure(t *testing.T) {
	t.Parallel()

	settingsRepo := &mocks.MockSettingsRepository{
		ListRecipientsFunc: func(context.Context, []domain.ReminderFrequency) ([]*usecase.ReminderRecipient, error) {
			return []*usecase.ReminderRecipient{
				{UserID: "user-1", Name: "Ada", Email: "ada@example.com"},
				{UserID: "user-2", Name: "Bayo", Email: "bayo@example.com"},
			}, nil
		},
	}
	savingsRepo := &mocks.MockSavingsRepository{
		ListByUserFunc: func(context.Context, string) ([]*domain.SavingsAccount, error) {
			return []*domain.SavingsAccount{
				{Name: "Fund", Balance: decimal.NewFromInt(1000), Currency: domain.CurrencyNGN},
			}, nil
		},
	}
	mailer := &mocks.MockMailer{
		SendFunc: func(_ context.Context, mail usecase.ReminderMail) error {
			if mail.To == "ada@example.com" {
				return errors.New("smtp unavailable")
			}
			return nil
		},
	}

	uc := usecase.NewReminderUseCase(settingsRepo, savingsRepo, mailer, zerolog.Nop())

	sent, err := uc.SendDue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent != 1 {
		t.Fatalf("sent = %d, want 1 despite first failure", sent)
	}
}
