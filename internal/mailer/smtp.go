package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog"

	"github.com/koboapp/kobo/internal/usecase"
)

// Config holds SMTP connection settings.
type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// SMTPMailer implements usecase.Mailer over plain SMTP.
type SMTPMailer struct {
	cfg Config
	log zerolog.Logger

	// send is swappable for tests.
	send func(e *email.Email, addr string, auth smtp.Auth) error
}

// NewSMTPMailer creates a new SMTPMailer.
func NewSMTPMailer(cfg Config, log zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		cfg: cfg,
		log: log.With().Str("component", "mailer").Logger(),
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

// SendSavingsReminder sends one savings reminder email.
func (m *SMTPMailer) SendSavingsReminder(ctx context.Context, mail usecase.ReminderMail) error {
	e := email.NewEmail()
	e.From = m.cfg.From
	e.To = []string{mail.To}
	e.Subject = "Time to update your savings balances"
	e.Text = []byte(reminderBody(mail))

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	}

	if err := m.send(e, addr, auth); err != nil {
		return fmt.Errorf("failed to send reminder to %s: %w", mail.To, err)
	}

	m.log.Info().Str("to", mail.To).Msg("savings reminder sent")
	return nil
}

func reminderBody(mail usecase.ReminderMail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\n", mail.Name)
	b.WriteString("Here is where your savings stand right now:\n\n")

	for _, account := range mail.Accounts {
		fmt.Fprintf(&b, "  %s: %s\n", account.Name, account.Balance)
	}

	fmt.Fprintf(&b, "\nTotal saved: %s\n\n", mail.TotalSavings)
	b.WriteString("Take a minute to update any balances that changed.\n")
	b.WriteString("\nKobo")

	return b.String()
}
