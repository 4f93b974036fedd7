package attendance

import "context"

// AttendanceRepository defines data access for attendance records. At most
// one record exists per (employee, date); GetByEmployeeAndDate is the
// lookup-before-insert guard the service relies on.
type AttendanceRepository interface {
	Create(ctx context.Context, record Attendance) (Attendance, error)
	GetByID(ctx context.Context, id int64) (Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (*Attendance, error)

	Update(ctx context.Context, record Attendance) error

	// GetHistory returns the most recent records for an employee, newest
	// date first, at most limit entries.
	GetHistory(ctx context.Context, employeeID int64, limit int) ([]Attendance, error)

	// GetByEmployeeAndMonth returns all records for an employee within a
	// calendar month.
	GetByEmployeeAndMonth(ctx context.Context, employeeID int64, year, month int) ([]Attendance, error)

	// ListByDate returns all records for a calendar date, any employee.
	ListByDate(ctx context.Context, date string) ([]Attendance, error)
}
