package leave

import "time"

// LeaveRequestStatus is one-way out of pending: once a request is approved,
// rejected or cancelled it is terminal.
type LeaveRequestStatus string

const (
	StatusPending   LeaveRequestStatus = "pending"
	StatusApproved  LeaveRequestStatus = "approved"
	StatusRejected  LeaveRequestStatus = "rejected"
	StatusCancelled LeaveRequestStatus = "cancelled"
)

// IsTerminal reports whether s is a terminal review status.
func (s LeaveRequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// Leave type codes match the per-type balances on the employee entity.
var LeaveTypes = []string{"annual", "sick", "personal", "emergency", "maternity", "paternity"}

// Duration granularities.
var Durations = []string{"full", "half", "hours"}

// LeaveRequest entity
type LeaveRequest struct {
	ID         int64
	EmployeeID int64
	Type       string
	StartDate  string // "YYYY-MM-DD"
	EndDate    string // "YYYY-MM-DD"
	Duration   string // "full", "half", "hours"
	Reason     string
	Status     LeaveRequestStatus

	SubmittedAt time.Time
	ReviewedAt  *time.Time
	ReviewedBy  *string
	Comments    *string
}

// DaysRequested counts the calendar days covered by the request, inclusive of
// both endpoints. Half-day and hourly requests still debit one day; the
// balance table is day-granular.
func (r *LeaveRequest) DaysRequested() int {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return 0
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 0
	}
	if r.Duration != "full" {
		return 1
	}
	return days
}

// Policy defines per-type leave rules. Data only: nothing in the service
// enforces approval levels or document requirements.
type Policy struct {
	LeaveType        string   `json:"leave_type"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	DefaultDays      int      `json:"default_days"`
	MinDays          int      `json:"min_days"`
	MaxDays          int      `json:"max_days"`
	RequiresApproval bool     `json:"requires_approval"`
	RequiresDocument bool     `json:"requires_document"`
	ApprovalLevels   []string `json:"approval_levels"`
}

// Balance is the per-type remaining allotment for one employee.
type Balance struct {
	EmployeeID int64  `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	Remaining  int    `json:"remaining"`
}
