package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeService handles income-related business logic
type IncomeService struct {
	incomeRepo     domain.IncomeRepository
	clock          *Clock
	eventPublisher websocket.EventPublisher
}

// NewIncomeService creates a new IncomeService
func NewIncomeService(incomeRepo domain.IncomeRepository, clock *Clock) *IncomeService {
	return &IncomeService{
		incomeRepo: incomeRepo,
		clock:      clock,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *IncomeService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *IncomeService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// CreateIncomeInput holds the input for recording an income
type CreateIncomeInput struct {
	Amount decimal.Decimal
	Source string
	Note   *string
	Date   *time.Time
}

// CreateIncome records a new income; the date defaults to today
func (s *IncomeService) CreateIncome(input CreateIncomeInput) (*domain.Income, error) {
	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	source := strings.TrimSpace(input.Source)
	if utf8.RuneCountInString(source) > domain.MaxSourceLength {
		return nil, domain.ErrSourceTooLong
	}

	note, ok := optionalText(input.Note, domain.MaxNoteLength)
	if !ok {
		return nil, domain.ErrNoteTooLong
	}

	date := s.clock.Today()
	if input.Date != nil {
		date = s.clock.Date(*input.Date)
	}

	created, err := s.incomeRepo.Create(&domain.Income{
		Amount: input.Amount,
		Source: source,
		Note:   note,
		Date:   date,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.IncomeCreated(created))
	return created, nil
}

// ListIncomes returns every income, newest first
func (s *IncomeService) ListIncomes() ([]*domain.Income, error) {
	return s.incomeRepo.List()
}

// DeleteIncome permanently removes an income
func (s *IncomeService) DeleteIncome(id uuid.UUID) error {
	if err := s.incomeRepo.Delete(id); err != nil {
		return err
	}

	s.publishEvent(websocket.IncomeDeleted(map[string]interface{}{"id": id}))
	return nil
}
