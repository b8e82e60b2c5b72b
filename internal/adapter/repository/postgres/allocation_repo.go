package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/koboapp/kobo/internal/domain"
)

// AllocationRepository implements usecase.AllocationRepository.
type AllocationRepository struct {
	pool *pgxpool.Pool
}

// NewAllocationRepository creates a new AllocationRepository.
func NewAllocationRepository(pool *pgxpool.Pool) *AllocationRepository {
	return &AllocationRepository{pool: pool}
}

// Create inserts a new savings allocation. An empty account link is
// stored as NULL.
func (r *AllocationRepository) Create(ctx context.Context, alloc *domain.SavingsAllocation) error {
	query := `
		INSERT INTO savings_allocations (id, user_id, name, amount, frequency, currency, savings_account_id, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		alloc.ID,
		alloc.UserID,
		alloc.Name,
		decimalToNumeric(alloc.Amount),
		alloc.Frequency,
		alloc.Currency,
		accountIDToText(alloc.SavingsAccountID),
		alloc.Date,
		alloc.CreatedAt,
		alloc.UpdatedAt,
	)

	return err
}

// GetByID retrieves an allocation scoped to its owner.
func (r *AllocationRepository) GetByID(ctx context.Context, userID, id string) (*domain.SavingsAllocation, error) {
	query := `
		SELECT id, user_id, name, amount, frequency, currency, savings_account_id, date, created_at, updated_at
		FROM savings_allocations
		WHERE id = $1 AND user_id = $2
	`

	alloc, err := scanAllocation(r.pool.QueryRow(ctx, query, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAllocationNotFound
	}
	if err != nil {
		return nil, err
	}

	return alloc, nil
}

// Update replaces the mutable fields of an allocation.
func (r *AllocationRepository) Update(ctx context.Context, alloc *domain.SavingsAllocation) error {
	query := `
		UPDATE savings_allocations
		SET name = $3, amount = $4, frequency = $5, currency = $6, savings_account_id = $7, date = $8, updated_at = $9
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		alloc.ID,
		alloc.UserID,
		alloc.Name,
		decimalToNumeric(alloc.Amount),
		alloc.Frequency,
		alloc.Currency,
		accountIDToText(alloc.SavingsAccountID),
		alloc.Date,
		alloc.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAllocationNotFound
	}

	return nil
}

// Delete removes an allocation scoped to its owner.
func (r *AllocationRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM savings_allocations WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAllocationNotFound
	}

	return nil
}

// ListByUser retrieves all allocations of a user, newest first.
func (r *AllocationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.SavingsAllocation, error) {
	query := `
		SELECT id, user_id, name, amount, frequency, currency, savings_account_id, date, created_at, updated_at
		FROM savings_allocations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allocs []*domain.SavingsAllocation
	for rows.Next() {
		alloc, err := scanAllocation(rows)
		if err != nil {
			return nil, err
		}
		allocs = append(allocs, alloc)
	}

	return allocs, rows.Err()
}

func scanAllocation(row pgx.Row) (*domain.SavingsAllocation, error) {
	var (
		alloc     domain.SavingsAllocation
		amount    pgtype.Numeric
		accountID pgtype.Text
	)

	err := row.Scan(
		&alloc.ID,
		&alloc.UserID,
		&alloc.Name,
		&amount,
		&alloc.Frequency,
		&alloc.Currency,
		&accountID,
		&alloc.Date,
		&alloc.CreatedAt,
		&alloc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	alloc.Amount = numericToDecimal(amount)
	if accountID.Valid {
		alloc.SavingsAccountID = accountID.String
	}

	return &alloc, nil
}

func accountIDToText(id string) pgtype.Text {
	return pgtype.Text{String: id, Valid: id != ""}
}
