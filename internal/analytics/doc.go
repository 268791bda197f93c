// Package analytics derives dashboard figures from expense, goal and income
// records: category and monthly rollups, goal progress and status, balance
// health, alerts and the export date filter.
//
// Every function is pure. Degenerate input never produces an error: missing
// or non-numeric amounts count as zero, malformed dates are skipped by month
// grouping, and divisions by a zero or negative base yield zero.
package analytics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)
