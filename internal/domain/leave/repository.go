package leave

import "context"

// LeaveRequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)

	// GetByEmployeeID returns the employee's requests, newest submission
	// first.
	GetByEmployeeID(ctx context.Context, employeeID int64) ([]LeaveRequest, error)

	Update(ctx context.Context, request LeaveRequest) error

	// CountByStatus counts requests currently in the given status across
	// all employees.
	CountByStatus(ctx context.Context, status LeaveRequestStatus) (int, error)
}

// Transactor runs fn atomically with respect to the underlying store. The
// approval flow uses it so the balance debit and the status flip commit
// together.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
