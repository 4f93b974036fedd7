package attendance

import (
	"context"
	"time"
)

// AttendanceService enforces the per-day check-in/check-out state machine.
// The caller supplies now so the workday boundary is testable.
type AttendanceService interface {
	// CheckIn records the start of the workday. Fails with
	// ErrAlreadyCheckedIn when today's record already has a check-in.
	CheckIn(ctx context.Context, employeeID int64, now time.Time) (AttendanceResponse, error)

	// CheckOut closes the workday and stores the formatted total hours.
	// Fails with ErrNotCheckedIn or ErrAlreadyCheckedOut.
	CheckOut(ctx context.Context, employeeID int64, now time.Time) (AttendanceResponse, error)

	// GetToday returns nil when the employee has no record for the day.
	GetToday(ctx context.Context, employeeID int64, now time.Time) (*AttendanceResponse, error)

	GetHistory(ctx context.Context, employeeID int64, limit int) ([]AttendanceResponse, error)

	GetMonthlyStats(ctx context.Context, employeeID int64, year, month int) (MonthlyStatsResponse, error)
}
