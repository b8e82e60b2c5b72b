package domain

import "errors"

var (
	// Record errors
	ErrIncomeNotFound       = errors.New("income record not found")
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrSavingsNotFound      = errors.New("savings account not found")
	ErrAllocationNotFound   = errors.New("savings allocation not found")
	ErrSettingsNotFound     = errors.New("user settings not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("user with this email already exists")

	// Projection errors
	ErrNegativePrincipal    = errors.New("principal must not be negative")
	ErrNegativeContribution = errors.New("monthly contribution must not be negative")
	ErrNegativeRate         = errors.New("annual rate must not be negative")
	ErrNegativeYears        = errors.New("years must not be negative")
	ErrTooManyYears         = errors.New("projection horizon too long")
)
