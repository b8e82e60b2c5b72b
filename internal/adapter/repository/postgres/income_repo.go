package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/koboapp/kobo/internal/domain"
)

// IncomeRepository implements usecase.IncomeRepository.
type IncomeRepository struct {
	pool *pgxpool.Pool
}

// NewIncomeRepository creates a new IncomeRepository.
func NewIncomeRepository(pool *pgxpool.Pool) *IncomeRepository {
	return &IncomeRepository{pool: pool}
}

// Create inserts a new income record.
func (r *IncomeRepository) Create(ctx context.Context, income *domain.Income) error {
	query := `
		INSERT INTO income (id, user_id, name, amount, frequency, is_work_hours, currency, type, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		income.ID,
		income.UserID,
		income.Name,
		decimalToNumeric(income.Amount),
		income.Frequency,
		income.IsWorkHours,
		income.Currency,
		income.Type,
		income.Date,
		income.CreatedAt,
		income.UpdatedAt,
	)

	return err
}

// GetByID retrieves an income record scoped to its owner.
func (r *IncomeRepository) GetByID(ctx context.Context, userID, id string) (*domain.Income, error) {
	query := `
		SELECT id, user_id, name, amount, frequency, is_work_hours, currency, type, date, created_at, updated_at
		FROM income
		WHERE id = $1 AND user_id = $2
	`

	income, err := scanIncome(r.pool.QueryRow(ctx, query, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrIncomeNotFound
	}
	if err != nil {
		return nil, err
	}

	return income, nil
}

// Update replaces the mutable fields of an income record.
func (r *IncomeRepository) Update(ctx context.Context, income *domain.Income) error {
	query := `
		UPDATE income
		SET name = $3, amount = $4, frequency = $5, is_work_hours = $6, currency = $7, type = $8, date = $9, updated_at = $10
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		income.ID,
		income.UserID,
		income.Name,
		decimalToNumeric(income.Amount),
		income.Frequency,
		income.IsWorkHours,
		income.Currency,
		income.Type,
		income.Date,
		income.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrIncomeNotFound
	}

	return nil
}

// Delete removes an income record scoped to its owner.
func (r *IncomeRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM income WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrIncomeNotFound
	}

	return nil
}

// ListByUser retrieves all income records of a user, newest first.
func (r *IncomeRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Income, error) {
	query := `
		SELECT id, user_id, name, amount, frequency, is_work_hours, currency, type, date, created_at, updated_at
		FROM income
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.Income
	for rows.Next() {
		income, err := scanIncome(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, income)
	}

	return records, rows.Err()
}

func scanIncome(row pgx.Row) (*domain.Income, error) {
	var (
		income domain.Income
		amount pgtype.Numeric
	)

	err := row.Scan(
		&income.ID,
		&income.UserID,
		&income.Name,
		&amount,
		&income.Frequency,
		&income.IsWorkHours,
		&income.Currency,
		&income.Type,
		&income.Date,
		&income.CreatedAt,
		&income.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	income.Amount = numericToDecimal(amount)

	return &income, nil
}
