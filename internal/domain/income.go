package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income is a single inflow of money
type Income struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Source    string          `json:"source"`
	Note      *string         `json:"note,omitempty"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

// IncomeRepository persists incomes. List returns newest first.
type IncomeRepository interface {
	Create(income *Income) (*Income, error)
	GetByID(id uuid.UUID) (*Income, error)
	List() ([]*Income, error)
	Delete(id uuid.UUID) error
}
