package service

import (
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseService handles expense-related business logic
type ExpenseService struct {
	expenseRepo    domain.ExpenseRepository
	clock          *Clock
	eventPublisher websocket.EventPublisher
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo domain.ExpenseRepository, clock *Clock) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		clock:       clock,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *ExpenseService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// publishEvent publishes a WebSocket event if a publisher is configured
func (s *ExpenseService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// ExpenseInput holds the input for creating or replacing an expense
type ExpenseInput struct {
	Amount   decimal.Decimal
	Category string
	Note     *string
	Date     *time.Time
}

// validate normalizes the input. fallbackDate is used when Date is nil.
func (s *ExpenseService) validate(input ExpenseInput, fallbackDate time.Time) (*domain.UpdateExpenseData, error) {
	category, empty, tooLong := requiredText(input.Category, domain.MaxCategoryLength)
	if empty {
		return nil, domain.ErrCategoryRequired
	}
	if tooLong {
		return nil, domain.ErrCategoryTooLong
	}

	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	note, ok := optionalText(input.Note, domain.MaxNoteLength)
	if !ok {
		return nil, domain.ErrNoteTooLong
	}

	date := fallbackDate
	if input.Date != nil {
		date = s.clock.Date(*input.Date)
	}

	return &domain.UpdateExpenseData{
		Amount:   input.Amount,
		Category: category,
		Note:     note,
		Date:     date,
	}, nil
}

// CreateExpense creates a new expense; the date defaults to today
func (s *ExpenseService) CreateExpense(input ExpenseInput) (*domain.Expense, error) {
	data, err := s.validate(input, s.clock.Today())
	if err != nil {
		return nil, err
	}

	created, err := s.expenseRepo.Create(&domain.Expense{
		Amount:   data.Amount,
		Category: data.Category,
		Note:     data.Note,
		Date:     data.Date,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.ExpenseCreated(created))
	return created, nil
}

// ListExpenses returns expenses newest first. The limit defaults to
// domain.DefaultExpenseLimit and is capped at domain.MaxExpenseLimit.
func (s *ExpenseService) ListExpenses(filters domain.ExpenseFilters) ([]*domain.Expense, error) {
	if filters.From != nil && filters.To != nil && filters.From.After(*filters.To) {
		return nil, domain.ErrInvalidDateRange
	}

	switch {
	case filters.Limit <= 0:
		filters.Limit = domain.DefaultExpenseLimit
	case filters.Limit > domain.MaxExpenseLimit:
		filters.Limit = domain.MaxExpenseLimit
	}

	return s.expenseRepo.List(&filters)
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(id uuid.UUID) (*domain.Expense, error) {
	return s.expenseRepo.GetByID(id)
}

// UpdateExpense replaces an expense's fields; a nil date keeps the current one
func (s *ExpenseService) UpdateExpense(id uuid.UUID, input ExpenseInput) (*domain.Expense, error) {
	existing, err := s.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	data, err := s.validate(input, existing.Date)
	if err != nil {
		return nil, err
	}

	updated, err := s.expenseRepo.Update(id, data)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.ExpenseUpdated(updated))
	return updated, nil
}

// DeleteExpense permanently removes an expense
func (s *ExpenseService) DeleteExpense(id uuid.UUID) error {
	if err := s.expenseRepo.Delete(id); err != nil {
		return err
	}

	s.publishEvent(websocket.ExpenseDeleted(map[string]interface{}{"id": id}))
	return nil
}
