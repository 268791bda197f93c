package testutil

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fingold/fingold-backend/internal/analytics"
	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/repository/storage"
	"github.com/fingold/fingold-backend/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrMockFailure is returned by mocks configured to fail
var ErrMockFailure = errors.New("mock failure")

// MockExpenseRepository is a mock implementation of domain.ExpenseRepository
type MockExpenseRepository struct {
	Expenses map[uuid.UUID]*domain.Expense
	ListErr  error
	// LastFilters records the filters of the most recent List call
	LastFilters *domain.ExpenseFilters
}

// NewMockExpenseRepository creates a new MockExpenseRepository
func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{
		Expenses: make(map[uuid.UUID]*domain.Expense),
	}
}

// AddExpense adds an expense to the mock repository
func (m *MockExpenseRepository) AddExpense(expense *domain.Expense) {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	m.Expenses[expense.ID] = expense
}

// Create creates a new expense
func (m *MockExpenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	expense.ID = uuid.New()
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = expense.CreatedAt
	m.Expenses[expense.ID] = expense
	return expense, nil
}

// GetByID retrieves an expense by ID
func (m *MockExpenseRepository) GetByID(id uuid.UUID) (*domain.Expense, error) {
	if expense, ok := m.Expenses[id]; ok {
		return expense, nil
	}
	return nil, domain.ErrExpenseNotFound
}

// List returns expenses inside the filter range, newest first
func (m *MockExpenseRepository) List(filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	m.LastFilters = filters
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	var result []*domain.Expense
	for _, e := range m.Expenses {
		if filters != nil && !analytics.Include(filters.DateRange, e) {
			continue
		}
		result = append(result, e)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if filters != nil && filters.Limit > 0 && len(result) > int(filters.Limit) {
		result = result[:filters.Limit]
	}
	return result, nil
}

// ListAll returns every expense newest first, ignoring any limit
func (m *MockExpenseRepository) ListAll() ([]*domain.Expense, error) {
	return m.List(&domain.ExpenseFilters{})
}

// Update replaces an expense's values
func (m *MockExpenseRepository) Update(id uuid.UUID, data *domain.UpdateExpenseData) (*domain.Expense, error) {
	expense, ok := m.Expenses[id]
	if !ok {
		return nil, domain.ErrExpenseNotFound
	}
	expense.Amount = data.Amount
	expense.Category = data.Category
	expense.Note = data.Note
	expense.Date = data.Date
	expense.UpdatedAt = time.Now()
	return expense, nil
}

// Delete removes an expense
func (m *MockExpenseRepository) Delete(id uuid.UUID) error {
	if _, ok := m.Expenses[id]; !ok {
		return domain.ErrExpenseNotFound
	}
	delete(m.Expenses, id)
	return nil
}

// MockGoalRepository is a mock implementation of domain.GoalRepository
type MockGoalRepository struct {
	Goals map[uuid.UUID]*domain.Goal
}

// NewMockGoalRepository creates a new MockGoalRepository
func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{
		Goals: make(map[uuid.UUID]*domain.Goal),
	}
}

// AddGoal adds a goal to the mock repository
func (m *MockGoalRepository) AddGoal(goal *domain.Goal) {
	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	m.Goals[goal.ID] = goal
}

// Create creates a new goal
func (m *MockGoalRepository) Create(goal *domain.Goal) (*domain.Goal, error) {
	goal.ID = uuid.New()
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = goal.CreatedAt
	m.Goals[goal.ID] = goal
	return goal, nil
}

// GetByID retrieves a goal by ID
func (m *MockGoalRepository) GetByID(id uuid.UUID) (*domain.Goal, error) {
	if goal, ok := m.Goals[id]; ok {
		return goal, nil
	}
	return nil, domain.ErrGoalNotFound
}

// List returns all goals, oldest first
func (m *MockGoalRepository) List() ([]*domain.Goal, error) {
	result := make([]*domain.Goal, 0, len(m.Goals))
	for _, g := range m.Goals {
		result = append(result, g)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

// Update replaces a goal's values
func (m *MockGoalRepository) Update(id uuid.UUID, data *domain.UpdateGoalData) (*domain.Goal, error) {
	goal, ok := m.Goals[id]
	if !ok {
		return nil, domain.ErrGoalNotFound
	}
	goal.Name = data.Name
	goal.TargetAmount = data.TargetAmount
	goal.CurrentAmount = data.CurrentAmount
	goal.Deadline = data.Deadline
	goal.Description = data.Description
	goal.UpdatedAt = time.Now()
	return goal, nil
}

// Delete removes a goal
func (m *MockGoalRepository) Delete(id uuid.UUID) error {
	if _, ok := m.Goals[id]; !ok {
		return domain.ErrGoalNotFound
	}
	delete(m.Goals, id)
	return nil
}

// MockIncomeRepository is a mock implementation of domain.IncomeRepository
type MockIncomeRepository struct {
	Incomes map[uuid.UUID]*domain.Income
	ListErr error
}

// NewMockIncomeRepository creates a new MockIncomeRepository
func NewMockIncomeRepository() *MockIncomeRepository {
	return &MockIncomeRepository{
		Incomes: make(map[uuid.UUID]*domain.Income),
	}
}

// AddIncome adds an income to the mock repository
func (m *MockIncomeRepository) AddIncome(income *domain.Income) {
	if income.ID == uuid.Nil {
		income.ID = uuid.New()
	}
	m.Incomes[income.ID] = income
}

// Create creates a new income
func (m *MockIncomeRepository) Create(income *domain.Income) (*domain.Income, error) {
	income.ID = uuid.New()
	income.CreatedAt = time.Now()
	m.Incomes[income.ID] = income
	return income, nil
}

// GetByID retrieves an income by ID
func (m *MockIncomeRepository) GetByID(id uuid.UUID) (*domain.Income, error) {
	if income, ok := m.Incomes[id]; ok {
		return income, nil
	}
	return nil, domain.ErrIncomeNotFound
}

// List returns all incomes, newest first
func (m *MockIncomeRepository) List() ([]*domain.Income, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	result := make([]*domain.Income, 0, len(m.Incomes))
	for _, i := range m.Incomes {
		result = append(result, i)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

// Delete removes an income
func (m *MockIncomeRepository) Delete(id uuid.UUID) error {
	if _, ok := m.Incomes[id]; !ok {
		return domain.ErrIncomeNotFound
	}
	delete(m.Incomes, id)
	return nil
}

// MockReportStorage is an in-memory implementation of storage.ReportStorage
type MockReportStorage struct {
	mu      sync.Mutex
	Objects map[string]storage.ReportObject
	PutErr  error
}

// NewMockReportStorage creates a new MockReportStorage
func NewMockReportStorage() *MockReportStorage {
	return &MockReportStorage{
		Objects: make(map[string]storage.ReportObject),
	}
}

// Put stores a copy of the report in memory
func (m *MockReportStorage) Put(ctx context.Context, obj *storage.ReportObject) error {
	if m.PutErr != nil {
		return m.PutErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *obj
	stored.Data = append([]byte(nil), obj.Data...)
	m.Objects[obj.Path] = stored
	return nil
}

// Delete removes the report
func (m *MockReportStorage) Delete(ctx context.Context, objectPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, objectPath)
	return nil
}

// PresignDownload returns a fake URL for a stored report
func (m *MockReportStorage) PresignDownload(ctx context.Context, objectPath string, filename string, expiry time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Objects[objectPath]; !ok {
		return "", fmt.Errorf("object %s not found", objectPath)
	}
	return fmt.Sprintf("https://storage.test/%s?expires=%d&filename=%s", objectPath, int(expiry.Seconds()), filename), nil
}

// PublishedEvent is an event captured by MockEventPublisher
type PublishedEvent struct {
	Event websocket.Event
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mu     sync.Mutex
	Events []PublishedEvent
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

// Publish records the event
func (m *MockEventPublisher) Publish(event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, PublishedEvent{Event: event})
}

// Types returns the recorded event types in publish order
func (m *MockEventPublisher) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.Events))
	for i, e := range m.Events {
		types[i] = e.Event.Type
	}
	return types
}

// Money parses a decimal literal, panicking on malformed input
func Money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
