package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const goalColumns = `id, name, target_amount, current_amount, deadline, description, created_at, updated_at`

// GoalRepository implements domain.GoalRepository using PostgreSQL
type GoalRepository struct {
	pool *pgxpool.Pool
	loc  *time.Location
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(pool *pgxpool.Pool, loc *time.Location) *GoalRepository {
	if loc == nil {
		loc = time.Local
	}
	return &GoalRepository{pool: pool, loc: loc}
}

// Create creates a new goal
func (r *GoalRepository) Create(goal *domain.Goal) (*domain.Goal, error) {
	ctx := context.Background()
	target, err := decimalToPgNumeric(goal.TargetAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid target amount: %w", err)
	}
	current, err := decimalToPgNumeric(goal.CurrentAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid current amount: %w", err)
	}

	id := goal.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO goals (id, name, target_amount, current_amount, deadline, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+goalColumns,
		uuidToPg(id), goal.Name, target, current, dateToPg(goal.Deadline), goal.Description,
	)
	return r.scan(row)
}

// GetByID retrieves a goal by its ID
func (r *GoalRepository) GetByID(id uuid.UUID) (*domain.Goal, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1`, uuidToPg(id))
	goal, err := r.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

// List retrieves all goals, oldest first
func (r *GoalRepository) List() ([]*domain.Goal, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `SELECT `+goalColumns+` FROM goals ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.Goal, 0)
	for rows.Next() {
		goal, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, goal)
	}
	return result, rows.Err()
}

// Update updates a goal
func (r *GoalRepository) Update(id uuid.UUID, data *domain.UpdateGoalData) (*domain.Goal, error) {
	ctx := context.Background()
	target, err := decimalToPgNumeric(data.TargetAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid target amount: %w", err)
	}
	current, err := decimalToPgNumeric(data.CurrentAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid current amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE goals
		SET name = $2, target_amount = $3, current_amount = $4, deadline = $5, description = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING `+goalColumns,
		uuidToPg(id), data.Name, target, current, dateToPg(data.Deadline), data.Description,
	)
	goal, err := r.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

// Delete permanently removes a goal
func (r *GoalRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx, `DELETE FROM goals WHERE id = $1`, uuidToPg(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) scan(row pgx.Row) (*domain.Goal, error) {
	var (
		id       pgtype.UUID
		target   pgtype.Numeric
		current  pgtype.Numeric
		deadline pgtype.Date
		g        domain.Goal
	)
	if err := row.Scan(&id, &g.Name, &target, &current, &deadline, &g.Description, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	g.ID = uuid.UUID(id.Bytes)
	g.TargetAmount = pgNumericToDecimal(target)
	g.CurrentAmount = pgNumericToDecimal(current)
	g.Deadline = pgDateIn(deadline, r.loc)
	return &g, nil
}
