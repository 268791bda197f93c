package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/fingold/fingold-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// GoalHandler handles goal-related HTTP requests
type GoalHandler struct {
	goalService *service.GoalService
	loc         *time.Location
}

// NewGoalHandler creates a new GoalHandler. Deadlines are read in loc.
func NewGoalHandler(goalService *service.GoalService, loc *time.Location) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		loc:         loc,
	}
}

// GoalRequest represents the create and update goal request body
type GoalRequest struct {
	Name          string  `json:"name"`
	TargetAmount  string  `json:"targetAmount"`
	CurrentAmount string  `json:"currentAmount,omitempty"`
	Deadline      string  `json:"deadline,omitempty"`
	Description   *string `json:"description,omitempty"`
}

// GoalResponse represents a goal and its progress in API responses
type GoalResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	TargetAmount    string  `json:"targetAmount"`
	CurrentAmount   string  `json:"currentAmount"`
	Deadline        *string `json:"deadline,omitempty"`
	Description     *string `json:"description,omitempty"`
	ProgressPercent int     `json:"progressPercent"`
	Remaining       string  `json:"remaining"`
	DaysLeft        *int    `json:"daysLeft"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

func (h *GoalHandler) bind(c echo.Context) (service.GoalInput, *bindError) {
	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		return service.GoalInput{}, errInvalidBody
	}

	target, ok := parseAmount(req.TargetAmount)
	if !ok {
		return service.GoalInput{}, &bindError{"targetAmount", "Must be a valid decimal number"}
	}
	current, ok := parseAmount(req.CurrentAmount)
	if !ok {
		return service.GoalInput{}, &bindError{"currentAmount", "Must be a valid decimal number"}
	}

	deadline, err := parseOptionalDate(req.Deadline, h.loc)
	if err != nil {
		return service.GoalInput{}, &bindError{"deadline", "Must be a date in YYYY-MM-DD format"}
	}

	return service.GoalInput{
		Name:          req.Name,
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
		Description:   req.Description,
	}, nil
}

func goalFieldError(err error) (field, message string, ok bool) {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return "name", "Name is required", true
	case errors.Is(err, domain.ErrNameTooLong):
		return "name", "Name must be 255 characters or less", true
	case errors.Is(err, domain.ErrInvalidTarget):
		return "targetAmount", "Target amount must be greater than zero", true
	case errors.Is(err, domain.ErrInvalidAmount):
		return "currentAmount", "Current amount must not be negative", true
	case errors.Is(err, domain.ErrDescriptionTooLong):
		return "description", "Description must be 1000 characters or less", true
	}
	return "", "", false
}

// CreateGoal handles POST /api/v1/goals
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	input, bindErr := h.bind(c)
	if bindErr != nil {
		return bindErr.respond(c)
	}

	goal, err := h.goalService.CreateGoal(input)
	if err != nil {
		if field, message, ok := goalFieldError(err); ok {
			return NewFieldError(c, field, message)
		}
		log.Error().Err(err).Msg("Failed to create goal")
		return NewInternalError(c, "Failed to create goal")
	}

	log.Info().Str("goal_id", goal.Goal.ID.String()).Str("name", goal.Goal.Name).Msg("Goal created")
	return c.JSON(http.StatusCreated, toGoalResponse(goal))
}

// GetGoals handles GET /api/v1/goals
func (h *GoalHandler) GetGoals(c echo.Context) error {
	goals, err := h.goalService.ListGoals()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get goals")
		return NewInternalError(c, "Failed to get goals")
	}

	response := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		response[i] = toGoalResponse(goal)
	}
	return c.JSON(http.StatusOK, response)
}

// GetGoal handles GET /api/v1/goals/:id
func (h *GoalHandler) GetGoal(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid goal ID", nil)
	}

	goal, err := h.goalService.GetGoal(id)
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return NewNotFoundError(c, "Goal not found")
		}
		log.Error().Err(err).Str("goal_id", id.String()).Msg("Failed to get goal")
		return NewInternalError(c, "Failed to get goal")
	}

	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// UpdateGoal handles PUT /api/v1/goals/:id
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid goal ID", nil)
	}

	input, bindErr := h.bind(c)
	if bindErr != nil {
		return bindErr.respond(c)
	}

	goal, err := h.goalService.UpdateGoal(id, input)
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return NewNotFoundError(c, "Goal not found")
		}
		if field, message, ok := goalFieldError(err); ok {
			return NewFieldError(c, field, message)
		}
		log.Error().Err(err).Str("goal_id", id.String()).Msg("Failed to update goal")
		return NewInternalError(c, "Failed to update goal")
	}

	log.Info().Str("goal_id", id.String()).Msg("Goal updated")
	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// DeleteGoal handles DELETE /api/v1/goals/:id
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid goal ID", nil)
	}

	if err := h.goalService.DeleteGoal(id); err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return NewNotFoundError(c, "Goal not found")
		}
		log.Error().Err(err).Str("goal_id", id.String()).Msg("Failed to delete goal")
		return NewInternalError(c, "Failed to delete goal")
	}

	log.Info().Str("goal_id", id.String()).Msg("Goal deleted")
	return c.NoContent(http.StatusNoContent)
}

func toGoalResponse(g *domain.GoalWithView) GoalResponse {
	return GoalResponse{
		ID:              g.Goal.ID.String(),
		Name:            g.Goal.Name,
		TargetAmount:    g.Goal.TargetAmount.StringFixed(2),
		CurrentAmount:   g.Goal.CurrentAmount.StringFixed(2),
		Deadline:        formatOptionalDate(g.Goal.Deadline),
		Description:     g.Goal.Description,
		ProgressPercent: g.View.ProgressPercent,
		Remaining:       g.View.Remaining.StringFixed(2),
		DaysLeft:        g.View.DaysLeft,
		Status:          string(g.View.Status),
		CreatedAt:       g.Goal.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       g.Goal.UpdatedAt.Format(time.RFC3339),
	}
}
