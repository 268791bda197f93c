package domain

import "errors"

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternalError      = errors.New("internal error")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrIncomeNotFound     = errors.New("income not found")
	ErrInvalidAmount      = errors.New("amount must not be negative")
	ErrInvalidTarget      = errors.New("target amount must be positive")
	ErrCategoryRequired   = errors.New("category is required")
	ErrCategoryTooLong    = errors.New("category exceeds maximum length")
	ErrNameRequired       = errors.New("name is required")
	ErrNameTooLong        = errors.New("name exceeds maximum length")
	ErrSourceTooLong      = errors.New("source exceeds maximum length")
	ErrNoteTooLong        = errors.New("note exceeds maximum length")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
	ErrInvalidRange       = errors.New("invalid balance range")
	ErrInvalidDateRange   = errors.New("from date is after to date")
	ErrNoExpenses         = errors.New("no expenses found for selected date range")
	ErrStorageDisabled    = errors.New("report storage is not configured")
)

// Validation constants
const (
	MaxCategoryLength    = 100
	MaxNameLength        = 255
	MaxSourceLength      = 255
	MaxNoteLength        = 1000
	MaxDescriptionLength = 1000
)
