package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/koboapp/kobo/internal/domain"
	"github.com/koboapp/kobo/internal/usecase"
)

// SettingsRepository implements usecase.SettingsRepository.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// CreateTx inserts default settings inside the registration transaction.
func (r *SettingsRepository) CreateTx(ctx context.Context, tx usecase.Transaction, settings *domain.UserSettings) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO user_settings (id, user_id, email, reminder_frequency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := pgxTx.Exec(ctx, query,
		settings.ID,
		settings.UserID,
		settings.Email,
		settings.ReminderFrequency,
		settings.CreatedAt,
		settings.UpdatedAt,
	)

	return err
}

// GetByUser retrieves a user's settings.
func (r *SettingsRepository) GetByUser(ctx context.Context, userID string) (*domain.UserSettings, error) {
	query := `
		SELECT id, user_id, email, reminder_frequency, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var settings domain.UserSettings
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&settings.ID,
		&settings.UserID,
		&settings.Email,
		&settings.ReminderFrequency,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// Update replaces a user's reminder preferences.
func (r *SettingsRepository) Update(ctx context.Context, settings *domain.UserSettings) error {
	query := `
		UPDATE user_settings
		SET email = $2, reminder_frequency = $3, updated_at = $4
		WHERE user_id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		settings.UserID,
		settings.Email,
		settings.ReminderFrequency,
		settings.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSettingsNotFound
	}

	return nil
}

// ListRecipients returns all active users whose reminder cadence matches
// one of the given frequencies. The reminder email from settings wins
// over the account email.
func (r *SettingsRepository) ListRecipients(ctx context.Context, frequencies []domain.ReminderFrequency) ([]*usecase.ReminderRecipient, error) {
	if len(frequencies) == 0 {
		return nil, nil
	}

	query := `
		SELECT s.user_id, u.name, COALESCE(NULLIF(s.email, ''), u.email), s.reminder_frequency
		FROM user_settings s
		JOIN users u ON u.id = s.user_id
		WHERE u.active AND s.reminder_frequency = ANY($1)
		ORDER BY s.user_id
	`

	values := make([]string, len(frequencies))
	for i, f := range frequencies {
		values[i] = string(f)
	}

	rows, err := r.pool.Query(ctx, query, values)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipients []*usecase.ReminderRecipient
	for rows.Next() {
		var rec usecase.ReminderRecipient
		err := rows.Scan(&rec.UserID, &rec.Name, &rec.Email, &rec.Frequency)
		if err != nil {
			return nil, err
		}
		recipients = append(recipients, &rec)
	}

	return recipients, rows.Err()
}
