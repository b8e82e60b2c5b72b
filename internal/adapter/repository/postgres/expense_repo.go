package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/koboapp/kobo/internal/domain"
)

// ExpenseRepository implements usecase.ExpenseRepository.
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

// Create inserts a new expense.
func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	query := `
		INSERT INTO expenses (id, user_id, name, amount, frequency, currency, category, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		expense.ID,
		expense.UserID,
		expense.Name,
		decimalToNumeric(expense.Amount),
		expense.Frequency,
		expense.Currency,
		expense.Category,
		expense.Date,
		expense.CreatedAt,
		expense.UpdatedAt,
	)

	return err
}

// GetByID retrieves an expense scoped to its owner.
func (r *ExpenseRepository) GetByID(ctx context.Context, userID, id string) (*domain.Expense, error) {
	query := `
		SELECT id, user_id, name, amount, frequency, currency, category, date, created_at, updated_at
		FROM expenses
		WHERE id = $1 AND user_id = $2
	`

	expense, err := scanExpense(r.pool.QueryRow(ctx, query, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrExpenseNotFound
	}
	if err != nil {
		return nil, err
	}

	return expense, nil
}

// Update replaces the mutable fields of an expense.
func (r *ExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	query := `
		UPDATE expenses
		SET name = $3, amount = $4, frequency = $5, currency = $6, category = $7, date = $8, updated_at = $9
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		expense.ID,
		expense.UserID,
		expense.Name,
		decimalToNumeric(expense.Amount),
		expense.Frequency,
		expense.Currency,
		expense.Category,
		expense.Date,
		expense.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}

	return nil
}

// Delete removes an expense scoped to its owner.
func (r *ExpenseRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}

	return nil
}

// ListByUser retrieves all expenses of a user, newest first.
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Expense, error) {
	query := `
		SELECT id, user_id, name, amount, frequency, currency, category, date, created_at, updated_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var (
		expense domain.Expense
		amount  pgtype.Numeric
	)

	err := row.Scan(
		&expense.ID,
		&expense.UserID,
		&expense.Name,
		&amount,
		&expense.Frequency,
		&expense.Currency,
		&expense.Category,
		&expense.Date,
		&expense.CreatedAt,
		&expense.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	expense.Amount = numericToDecimal(amount)

	return &expense, nil
}
