package employee

import "time"

// Employee represents a provisioned staff member. Leave balances are integer
// days remaining per leave type for the current year; they decrease only when
// a leave request is approved.
type Employee struct {
	ID           int64
	EmployeeCode string
	Name         string
	Email        string
	PasswordHash string
	Position     string
	Department   string
	Manager      *string
	Phone        *string
	Address      *string
	AvatarURL    *string
	JoinDate     time.Time
	Status       string // "active", "inactive"

	AnnualLeaveBalance    int
	SickLeaveBalance      int
	PersonalLeaveBalance  int
	EmergencyLeaveBalance int
	MaternityLeaveBalance int
	PaternityLeaveBalance int
}

// BalanceFor returns the remaining days for a leave type code.
func (e *Employee) BalanceFor(leaveType string) (int, bool) {
	switch leaveType {
	case "annual":
		return e.AnnualLeaveBalance, true
	case "sick":
		return e.SickLeaveBalance, true
	case "personal":
		return e.PersonalLeaveBalance, true
	case "emergency":
		return e.EmergencyLeaveBalance, true
	case "maternity":
		return e.MaternityLeaveBalance, true
	case "paternity":
		return e.PaternityLeaveBalance, true
	}
	return 0, false
}

// SetBalanceFor overwrites the remaining days for a leave type code.
func (e *Employee) SetBalanceFor(leaveType string, days int) bool {
	switch leaveType {
	case "annual":
		e.AnnualLeaveBalance = days
	case "sick":
		e.SickLeaveBalance = days
	case "personal":
		e.PersonalLeaveBalance = days
	case "emergency":
		e.EmergencyLeaveBalance = days
	case "maternity":
		e.MaternityLeaveBalance = days
	case "paternity":
		e.PaternityLeaveBalance = days
	default:
		return false
	}
	return true
}
