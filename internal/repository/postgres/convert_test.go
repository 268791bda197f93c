package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	tests := []string{"0", "12.50", "1234567.89", "0.01"}

	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			d := decimal.RequireFromString(tt)
			num, err := decimalToPgNumeric(d)
			require.NoError(t, err)
			assert.True(t, num.Valid)
			assert.True(t, d.Equal(pgNumericToDecimal(num)))
		})
	}
}

func TestPgNumericToDecimal_Invalid(t *testing.T) {
	assert.True(t, pgNumericToDecimal(pgtype.Numeric{}).IsZero())
}

func TestDateToPg(t *testing.T) {
	assert.False(t, dateToPg(nil).Valid)

	var zero time.Time
	assert.False(t, dateToPg(&zero).Valid)

	d := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	got := dateToPg(&d)
	assert.True(t, got.Valid)
	assert.Equal(t, d, got.Time)
}

func TestPgDateIn(t *testing.T) {
	assert.Nil(t, pgDateIn(pgtype.Date{}, time.UTC))

	loc := time.FixedZone("UTC+7", 7*3600)
	d := pgtype.Date{Time: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Valid: true}

	got := pgDateIn(d, loc)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), *got)
	assert.Equal(t, 15, got.Day())
}

func TestMigrateURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@localhost:5432/db?sslmode=disable", "pgx5://u:p@localhost:5432/db?sslmode=disable"},
		{"postgresql://localhost/db", "pgx5://localhost/db"},
		{"pgx5://localhost/db", "pgx5://localhost/db"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, migrateURL(tt.in))
		})
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
