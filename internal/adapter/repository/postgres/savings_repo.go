package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/koboapp/kobo/internal/domain"
)

// SavingsRepository implements usecase.SavingsRepository.
type SavingsRepository struct {
	pool *pgxpool.Pool
}

// NewSavingsRepository creates a new SavingsRepository.
func NewSavingsRepository(pool *pgxpool.Pool) *SavingsRepository {
	return &SavingsRepository{pool: pool}
}

// Create inserts a new savings account.
func (r *SavingsRepository) Create(ctx context.Context, account *domain.SavingsAccount) error {
	query := `
		INSERT INTO savings_accounts (id, user_id, name, balance, currency, monthly_contribution, interest_rate_pct, last_updated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		account.ID,
		account.UserID,
		account.Name,
		decimalToNumeric(account.Balance),
		account.Currency,
		decimalToNumeric(account.MonthlyContribution),
		decimalToNumeric(account.InterestRatePct),
		account.LastUpdated,
		account.CreatedAt,
		account.UpdatedAt,
	)

	return err
}

// GetByID retrieves a savings account scoped to its owner.
func (r *SavingsRepository) GetByID(ctx context.Context, userID, id string) (*domain.SavingsAccount, error) {
	query := `
		SELECT id, user_id, name, balance, currency, monthly_contribution, interest_rate_pct, last_updated, created_at, updated_at
		FROM savings_accounts
		WHERE id = $1 AND user_id = $2
	`

	account, err := scanSavingsAccount(r.pool.QueryRow(ctx, query, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSavingsNotFound
	}
	if err != nil {
		return nil, err
	}

	return account, nil
}

// Update replaces the mutable fields of a savings account.
func (r *SavingsRepository) Update(ctx context.Context, account *domain.SavingsAccount) error {
	query := `
		UPDATE savings_accounts
		SET name = $3, balance = $4, currency = $5, monthly_contribution = $6, interest_rate_pct = $7, last_updated = $8, updated_at = $9
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		account.ID,
		account.UserID,
		account.Name,
		decimalToNumeric(account.Balance),
		account.Currency,
		decimalToNumeric(account.MonthlyContribution),
		decimalToNumeric(account.InterestRatePct),
		account.LastUpdated,
		account.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSavingsNotFound
	}

	return nil
}

// UpdateBalance sets a new balance and stamps when it was observed.
func (r *SavingsRepository) UpdateBalance(ctx context.Context, userID, id string, balance decimal.Decimal, updatedAt time.Time) error {
	query := `
		UPDATE savings_accounts
		SET balance = $3, last_updated = $4, updated_at = $4
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, id, userID, decimalToNumeric(balance), updatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSavingsNotFound
	}

	return nil
}

// Delete removes a savings account scoped to its owner. Allocations that
// reference the account keep existing with the link cleared, enforced by
// the schema's ON DELETE SET NULL.
func (r *SavingsRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM savings_accounts WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSavingsNotFound
	}

	return nil
}

// ListByUser retrieves all savings accounts of a user, newest first.
func (r *SavingsRepository) ListByUser(ctx context.Context, userID string) ([]*domain.SavingsAccount, error) {
	query := `
		SELECT id, user_id, name, balance, currency, monthly_contribution, interest_rate_pct, last_updated, created_at, updated_at
		FROM savings_accounts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.SavingsAccount
	for rows.Next() {
		account, err := scanSavingsAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func scanSavingsAccount(row pgx.Row) (*domain.SavingsAccount, error) {
	var (
		account      domain.SavingsAccount
		balance      pgtype.Numeric
		contribution pgtype.Numeric
		rate         pgtype.Numeric
	)

	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&balance,
		&account.Currency,
		&contribution,
		&rate,
		&account.LastUpdated,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Balance = numericToDecimal(balance)
	account.MonthlyContribution = numericToDecimal(contribution)
	account.InterestRatePct = numericToDecimal(rate)

	return &account, nil
}
