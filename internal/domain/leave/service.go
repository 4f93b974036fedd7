package leave

import "context"

// LeaveService validates and records leave requests and maintains the
// per-type balances on the employee record.
type LeaveService interface {
	// Submit creates a pending request and notifies the submitter.
	Submit(ctx context.Context, req SubmitRequest) (LeaveRequestResponse, error)

	// Review applies a terminal decision to a pending request. Approval
	// debits the matching leave-type balance; rejection and cancellation
	// never touch it. One notification goes to the submitter.
	Review(ctx context.Context, id int64, req ReviewRequest, reviewer string) (LeaveRequestResponse, error)

	ListByEmployee(ctx context.Context, employeeID int64) ([]LeaveRequestResponse, error)

	GetBalances(ctx context.Context, employeeID int64) ([]Balance, error)

	GetPolicies(ctx context.Context) []Policy
}
