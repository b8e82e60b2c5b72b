package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/koboapp/kobo/internal/domain"
)

// SubscriptionRepository implements usecase.SubscriptionRepository.
type SubscriptionRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriptionRepository creates a new SubscriptionRepository.
func NewSubscriptionRepository(pool *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool}
}

// Create inserts a new subscription.
func (r *SubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, user_id, name, amount, frequency, currency, next_payment_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		sub.ID,
		sub.UserID,
		sub.Name,
		decimalToNumeric(sub.Amount),
		sub.Frequency,
		sub.Currency,
		sub.NextPaymentDate,
		sub.CreatedAt,
		sub.UpdatedAt,
	)

	return err
}

// GetByID retrieves a subscription scoped to its owner.
func (r *SubscriptionRepository) GetByID(ctx context.Context, userID, id string) (*domain.Subscription, error) {
	query := `
		SELECT id, user_id, name, amount, frequency, currency, next_payment_date, created_at, updated_at
		FROM subscriptions
		WHERE id = $1 AND user_id = $2
	`

	sub, err := scanSubscription(r.pool.QueryRow(ctx, query, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}

	return sub, nil
}

// Update replaces the mutable fields of a subscription.
func (r *SubscriptionRepository) Update(ctx context.Context, sub *domain.Subscription) error {
	query := `
		UPDATE subscriptions
		SET name = $3, amount = $4, frequency = $5, currency = $6, next_payment_date = $7, updated_at = $8
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		sub.ID,
		sub.UserID,
		sub.Name,
		decimalToNumeric(sub.Amount),
		sub.Frequency,
		sub.Currency,
		sub.NextPaymentDate,
		sub.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSubscriptionNotFound
	}

	return nil
}

// Delete removes a subscription scoped to its owner.
func (r *SubscriptionRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM subscriptions WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSubscriptionNotFound
	}

	return nil
}

// ListByUser retrieves all subscriptions of a user ordered by the next
// payment date.
func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Subscription, error) {
	query := `
		SELECT id, user_id, name, amount, frequency, currency, next_payment_date, created_at, updated_at
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY next_payment_date ASC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*domain.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

func scanSubscription(row pgx.Row) (*domain.Subscription, error) {
	var (
		sub    domain.Subscription
		amount pgtype.Numeric
	)

	err := row.Scan(
		&sub.ID,
		&sub.UserID,
		&sub.Name,
		&amount,
		&sub.Frequency,
		&sub.Currency,
		&sub.NextPaymentDate,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	sub.Amount = numericToDecimal(amount)

	return &sub, nil
}
