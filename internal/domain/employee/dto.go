package employee

import (
	"github.com/intek-hris/attendance-backend-go/internal/pkg/validator"
)

// EmployeeResponse is the public projection of an employee; the password hash
// never leaves the service layer.
type EmployeeResponse struct {
	ID           int64   `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Position     string  `json:"position"`
	Department   string  `json:"department"`
	Manager      *string `json:"manager,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	JoinDate     string  `json:"join_date"`
	Status       string  `json:"status"`

	LeaveBalances map[string]int `json:"leave_balances"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		Name:         e.Name,
		Email:        e.Email,
		Position:     e.Position,
		Department:   e.Department,
		Manager:      e.Manager,
		Phone:        e.Phone,
		Address:      e.Address,
		AvatarURL:    e.AvatarURL,
		JoinDate:     e.JoinDate.Format("2006-01-02"),
		Status:       e.Status,
		LeaveBalances: map[string]int{
			"annual":    e.AnnualLeaveBalance,
			"sick":      e.SickLeaveBalance,
			"personal":  e.PersonalLeaveBalance,
			"emergency": e.EmergencyLeaveBalance,
			"maternity": e.MaternityLeaveBalance,
			"paternity": e.PaternityLeaveBalance,
		},
	}
}

// UpdateProfileRequest carries the profile fields an employee may change.
// Nil pointers mean "leave unchanged".
type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
}

func (r UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{Field: "current_password", Message: "current password is required"})
	}
	if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "new password must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
