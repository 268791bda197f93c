package analytics

import (
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// ComputeGoalView derives progress, remaining amount, days left and status
// of a goal as of today.
func ComputeGoalView(goal *domain.Goal, today time.Time) domain.GoalView {
	if goal == nil {
		return domain.GoalView{Remaining: decimal.Zero, Status: domain.GoalStatusBehind}
	}

	progress := ProgressPercent(goal.CurrentAmount, goal.TargetAmount)

	remaining := goal.TargetAmount.Sub(goal.CurrentAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	daysLeft := DaysLeft(goal.Deadline, today)

	return domain.GoalView{
		ProgressPercent: progress,
		Remaining:       remaining,
		DaysLeft:        daysLeft,
		Status:          GoalStatus(progress, daysLeft),
	}
}

// ProgressPercent returns round(current/target*100) clamped to [0, 100].
// A target that is not positive gives 0.
func ProgressPercent(current, target decimal.Decimal) int {
	if !target.IsPositive() {
		return 0
	}

	p := current.Div(target).Mul(hundred).Round(0)
	if p.GreaterThan(hundred) {
		return 100
	}
	if p.IsNegative() {
		return 0
	}
	return int(p.IntPart())
}

// DaysLeft returns the number of calendar days from today to the deadline,
// negative once it has passed, or nil without a deadline. Days are counted
// on the calendar so a DST shift never gains or loses one.
func DaysLeft(deadline *time.Time, today time.Time) *int {
	if deadline == nil || deadline.IsZero() {
		return nil
	}
	days := int(calendarDay(*deadline).Sub(calendarDay(today)) / day)
	return &days
}

// GoalStatus applies, in order: completed, overdue, on track, behind
func GoalStatus(progress int, daysLeft *int) domain.GoalStatus {
	switch {
	case progress >= 100:
		return domain.GoalStatusCompleted
	case daysLeft != nil && *daysLeft < 0:
		return domain.GoalStatusOverdue
	case progress >= domain.OnTrackThreshold:
		return domain.GoalStatusOnTrack
	default:
		return domain.GoalStatusBehind
	}
}
