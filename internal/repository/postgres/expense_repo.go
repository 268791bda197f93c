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

const expenseColumns = `id, amount, category, note, expense_date, created_at, updated_at`

// ExpenseRepository implements domain.ExpenseRepository using PostgreSQL
type ExpenseRepository struct {
	pool *pgxpool.Pool
	loc  *time.Location
}

// NewExpenseRepository creates a new ExpenseRepository. Dates are returned
// as midnight in loc.
func NewExpenseRepository(pool *pgxpool.Pool, loc *time.Location) *ExpenseRepository {
	if loc == nil {
		loc = time.Local
	}
	return &ExpenseRepository{pool: pool, loc: loc}
}

// Create creates a new expense
func (r *ExpenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	ctx := context.Background()
	amount, err := decimalToPgNumeric(expense.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	id := expense.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO expenses (id, amount, category, note, expense_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+expenseColumns,
		uuidToPg(id), amount, expense.Category, expense.Note, dateToPg(&expense.Date),
	)
	return r.scan(row)
}

// GetByID retrieves an expense by its ID
func (r *ExpenseRepository) GetByID(id uuid.UUID) (*domain.Expense, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, uuidToPg(id))
	expense, err := r.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

// List retrieves expenses newest first, optionally bounded by an inclusive date range
func (r *ExpenseRepository) List(filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	ctx := context.Background()

	var from, to pgtype.Date
	limit := int32(domain.DefaultExpenseLimit)
	if filters != nil {
		from = dateToPg(filters.From)
		to = dateToPg(filters.To)
		if filters.Limit > 0 {
			limit = filters.Limit
		}
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE ($1::date IS NULL OR expense_date >= $1::date)
		  AND ($2::date IS NULL OR expense_date <= $2::date)
		ORDER BY expense_date DESC, created_at DESC
		LIMIT $3`,
		from, to, limit,
	)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// ListAll retrieves every expense newest first, without a row limit
func (r *ExpenseRepository) ListAll() ([]*domain.Expense, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		ORDER BY expense_date DESC, created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *ExpenseRepository) collect(rows pgx.Rows) ([]*domain.Expense, error) {
	defer rows.Close()

	result := make([]*domain.Expense, 0)
	for rows.Next() {
		expense, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, expense)
	}
	return result, rows.Err()
}

// Update updates an expense
func (r *ExpenseRepository) Update(id uuid.UUID, data *domain.UpdateExpenseData) (*domain.Expense, error) {
	ctx := context.Background()
	amount, err := decimalToPgNumeric(data.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE expenses
		SET amount = $2, category = $3, note = $4, expense_date = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING `+expenseColumns,
		uuidToPg(id), amount, data.Category, data.Note, dateToPg(&data.Date),
	)
	expense, err := r.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

// Delete permanently removes an expense
func (r *ExpenseRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, uuidToPg(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepository) scan(row pgx.Row) (*domain.Expense, error) {
	var (
		id     pgtype.UUID
		amount pgtype.Numeric
		date   pgtype.Date
		e      domain.Expense
	)
	if err := row.Scan(&id, &amount, &e.Category, &e.Note, &date, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.ID = uuid.UUID(id.Bytes)
	e.Amount = pgNumericToDecimal(amount)
	if d := pgDateIn(date, r.loc); d != nil {
		e.Date = *d
	}
	return &e, nil
}
