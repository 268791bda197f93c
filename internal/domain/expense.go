package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a single spending record
type Expense struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Note      *string         `json:"note,omitempty"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ExpenseFilters narrows an expense listing. A nil bound is open.
type ExpenseFilters struct {
	DateRange
	Limit int32
}

const (
	DefaultExpenseLimit = 500
	MaxExpenseLimit     = 1000
)

// UpdateExpenseData holds the replacement values for an expense
type UpdateExpenseData struct {
	Amount   decimal.Decimal
	Category string
	Note     *string
	Date     time.Time
}

// ExpenseRepository persists expenses. List and ListAll return newest first.
// ListAll ignores the listing limit and feeds the aggregates.
type ExpenseRepository interface {
	Create(expense *Expense) (*Expense, error)
	GetByID(id uuid.UUID) (*Expense, error)
	List(filters *ExpenseFilters) ([]*Expense, error)
	ListAll() ([]*Expense, error)
	Update(id uuid.UUID, data *UpdateExpenseData) (*Expense, error)
	Delete(id uuid.UUID) error
}
