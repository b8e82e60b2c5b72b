package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/finance"
	"github.com/koboapp/kobo/internal/metrics"
)

// ReminderUseCase sends periodic savings reminder emails. A run loads every
// user whose reminder frequency is due for the given instant, summarises
// their savings accounts and mails them.
type ReminderUseCase struct {
	settingsRepo SettingsRepository
	savingsRepo  SavingsRepository
	mailer       Mailer
	log          zerolog.Logger
	now          func() time.Time
}

// NewReminderUseCase creates a new ReminderUseCase.
func NewReminderUseCase(
	settingsRepo SettingsRepository,
	savingsRepo SavingsRepository,
	mailer Mailer,
	log zerolog.Logger,
) *ReminderUseCase {
	return &ReminderUseCase{
		settingsRepo: settingsRepo,
		savingsRepo:  savingsRepo,
		mailer:       mailer,
		log:          log,
		now:          time.Now,
	}
}

// DueFrequencies reports which reminder frequencies fire at the given
// instant: daily every day, weekly on Mondays, monthly on the first of the
// month.
func DueFrequencies(now time.Time) []domain.ReminderFrequency {
	due := []domain.ReminderFrequency{domain.ReminderDaily}
	if now.Weekday() == time.Monday {
		due = append(due, domain.ReminderWeekly)
	}
	if now.Day() == 1 {
		due = append(due, domain.ReminderMonthly)
	}
	return due
}

// SendDue mails every recipient whose frequency is due right now and
// returns the number of reminders sent. A failure for one recipient is
// logged and does not stop the run.
func (uc *ReminderUseCase) SendDue(ctx context.Context) (int, error) {
	recipients, err := uc.settingsRepo.ListRecipients(ctx, DueFrequencies(uc.now()))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, r := range recipients {
		if err := uc.sendOne(ctx, r); err != nil {
			uc.log.Error().Err(err).Str("user_id", r.UserID).Msg("savings reminder failed")
			continue
		}
		sent++
		metrics.ReminderSent()
	}
	return sent, nil
}

func (uc *ReminderUseCase) sendOne(ctx context.Context, r *ReminderRecipient) error {
	accounts, err := uc.savingsRepo.ListByUser(ctx, r.UserID)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		return nil
	}

	balances := finance.AccountBalances(accounts)
	totals := finance.TotalsByCurrency(balances)

	// Per-currency totals render side by side, e.g. "₦120,000.00 + $500.00".
	parts := make([]string, 0, len(totals))
	for _, c := range []domain.Currency{domain.CurrencyNGN, domain.CurrencyUSD} {
		if totals[c] == 0 {
			continue
		}
		parts = append(parts, finance.Format(totals[c], c))
	}
	if len(parts) == 0 {
		parts = append(parts, finance.Format(0, domain.CurrencyNGN))
	}

	lines := make([]ReminderAccountLine, 0, len(balances))
	for _, b := range balances {
		amount := finance.ParseAmount(b.Amount)
		lines = append(lines, ReminderAccountLine{
			Name:    b.Label,
			Balance: finance.Format(amount, b.Currency),
		})
	}

	return uc.mailer.SendSavingsReminder(ctx, ReminderMail{
		To:           r.Email,
		Name:         r.Name,
		TotalSavings: strings.Join(parts, " + "),
		Accounts:     lines,
	})
}
