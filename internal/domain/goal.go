package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is a savings target with optional deadline
type Goal struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Description   *string         `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// GoalStatus is the derived state of a goal
type GoalStatus string

const (
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusOnTrack   GoalStatus = "ontrack"
	GoalStatusBehind    GoalStatus = "behind"
	GoalStatusOverdue   GoalStatus = "overdue"
)

// OnTrackThreshold is the progress percent at which a goal counts as on track
const OnTrackThreshold = 50

// GoalView holds the values derived from a goal for a given day
type GoalView struct {
	ProgressPercent int             `json:"progressPercent"`
	Remaining       decimal.Decimal `json:"remaining"`
	DaysLeft        *int            `json:"daysLeft"`
	Status          GoalStatus      `json:"status"`
}

// GoalWithView pairs a goal with its derived view
type GoalWithView struct {
	Goal *Goal    `json:"goal"`
	View GoalView `json:"view"`
}

// UpdateGoalData holds the replacement values for a goal
type UpdateGoalData struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	Description   *string
}

// GoalRepository persists goals. List returns oldest first.
type GoalRepository interface {
	Create(goal *Goal) (*Goal, error)
	GetByID(id uuid.UUID) (*Goal, error)
	List() ([]*Goal, error)
	Update(id uuid.UUID, data *UpdateGoalData) (*Goal, error)
	Delete(id uuid.UUID) error
}
