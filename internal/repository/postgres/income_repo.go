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

const incomeColumns = `id, amount, source, note, income_date, created_at`

// IncomeRepository implements domain.IncomeRepository using PostgreSQL
type IncomeRepository struct {
	pool *pgxpool.Pool
	loc  *time.Location
}

// NewIncomeRepository creates a new IncomeRepository
func NewIncomeRepository(pool *pgxpool.Pool, loc *time.Location) *IncomeRepository {
	if loc == nil {
		loc = time.Local
	}
	return &IncomeRepository{pool: pool, loc: loc}
}

// Create records a new income
func (r *IncomeRepository) Create(income *domain.Income) (*domain.Income, error) {
	ctx := context.Background()
	amount, err := decimalToPgNumeric(income.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	id := income.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO incomes (id, amount, source, note, income_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+incomeColumns,
		uuidToPg(id), amount, income.Source, income.Note, dateToPg(&income.Date),
	)
	return r.scan(row)
}

// GetByID retrieves an income by its ID
func (r *IncomeRepository) GetByID(id uuid.UUID) (*domain.Income, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `SELECT `+incomeColumns+` FROM incomes WHERE id = $1`, uuidToPg(id))
	income, err := r.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrIncomeNotFound
		}
		return nil, err
	}
	return income, nil
}

// List retrieves all incomes, newest first
func (r *IncomeRepository) List() ([]*domain.Income, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `SELECT `+incomeColumns+` FROM incomes ORDER BY income_date DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.Income, 0)
	for rows.Next() {
		income, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, income)
	}
	return result, rows.Err()
}

// Delete permanently removes an income
func (r *IncomeRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx, `DELETE FROM incomes WHERE id = $1`, uuidToPg(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrIncomeNotFound
	}
	return nil
}

func (r *IncomeRepository) scan(row pgx.Row) (*domain.Income, error) {
	var (
		id     pgtype.UUID
		amount pgtype.Numeric
		date   pgtype.Date
		i      domain.Income
	)
	if err := row.Scan(&id, &amount, &i.Source, &i.Note, &date, &i.CreatedAt); err != nil {
		return nil, err
	}
	i.ID = uuid.UUID(id.Bytes)
	i.Amount = pgNumericToDecimal(amount)
	if d := pgDateIn(date, r.loc); d != nil {
		i.Date = *d
	}
	return &i, nil
}
