package service

import (
	"time"

	"github.com/fingold/fingold-backend/internal/analytics"
	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalService handles savings goal business logic
type GoalService struct {
	goalRepo       domain.GoalRepository
	clock          *Clock
	eventPublisher websocket.EventPublisher
}

// NewGoalService creates a new GoalService
func NewGoalService(goalRepo domain.GoalRepository, clock *Clock) *GoalService {
	return &GoalService{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *GoalService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *GoalService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// GoalInput holds the input for creating or replacing a goal
type GoalInput struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	Description   *string
}

func (s *GoalService) validate(input GoalInput) (*domain.UpdateGoalData, error) {
	name, empty, tooLong := requiredText(input.Name, domain.MaxNameLength)
	if empty {
		return nil, domain.ErrNameRequired
	}
	if tooLong {
		return nil, domain.ErrNameTooLong
	}

	if !input.TargetAmount.IsPositive() {
		return nil, domain.ErrInvalidTarget
	}
	if input.CurrentAmount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	description, ok := optionalText(input.Description, domain.MaxDescriptionLength)
	if !ok {
		return nil, domain.ErrDescriptionTooLong
	}

	var deadline *time.Time
	if input.Deadline != nil {
		d := s.clock.Date(*input.Deadline)
		deadline = &d
	}

	return &domain.UpdateGoalData{
		Name:          name,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		Deadline:      deadline,
		Description:   description,
	}, nil
}

// withView pairs a goal with its progress view as of today
func (s *GoalService) withView(goal *domain.Goal) *domain.GoalWithView {
	return &domain.GoalWithView{
		Goal: goal,
		View: analytics.ComputeGoalView(goal, s.clock.Today()),
	}
}

// CreateGoal creates a new goal
func (s *GoalService) CreateGoal(input GoalInput) (*domain.GoalWithView, error) {
	data, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	created, err := s.goalRepo.Create(&domain.Goal{
		Name:          data.Name,
		TargetAmount:  data.TargetAmount,
		CurrentAmount: data.CurrentAmount,
		Deadline:      data.Deadline,
		Description:   data.Description,
	})
	if err != nil {
		return nil, err
	}

	result := s.withView(created)
	s.publishEvent(websocket.GoalCreated(result))
	return result, nil
}

// ListGoals returns every goal with its progress view
func (s *GoalService) ListGoals() ([]*domain.GoalWithView, error) {
	goals, err := s.goalRepo.List()
	if err != nil {
		return nil, err
	}

	result := make([]*domain.GoalWithView, len(goals))
	for i, g := range goals {
		result[i] = s.withView(g)
	}
	return result, nil
}

// GetGoal retrieves a goal with its progress view
func (s *GoalService) GetGoal(id uuid.UUID) (*domain.GoalWithView, error) {
	goal, err := s.goalRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.withView(goal), nil
}

// UpdateGoal replaces a goal's fields
func (s *GoalService) UpdateGoal(id uuid.UUID, input GoalInput) (*domain.GoalWithView, error) {
	data, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	updated, err := s.goalRepo.Update(id, data)
	if err != nil {
		return nil, err
	}

	result := s.withView(updated)
	s.publishEvent(websocket.GoalUpdated(result))
	return result, nil
}

// DeleteGoal permanently removes a goal
func (s *GoalService) DeleteGoal(id uuid.UUID) error {
	if err := s.goalRepo.Delete(id); err != nil {
		return err
	}

	s.publishEvent(websocket.GoalDeleted(map[string]interface{}{"id": id}))
	return nil
}
