package response

import (
	"errors"
	"net/http"

	"github.com/intek-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/intek-hris/attendance-backend-go/internal/domain/auth"
	"github.com/intek-hris/attendance-backend-go/internal/domain/employee"
	"github.com/intek-hris/attendance-backend-go/internal/domain/event"
	"github.com/intek-hris/attendance-backend-go/internal/domain/leave"
	"github.com/intek-hris/attendance-backend-go/internal/domain/notification"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired session")
	case errors.Is(err, auth.ErrNotAuthenticated):
		Unauthorized(w, "Not authenticated")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Google account email is not verified")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrWrongPassword):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, employee.ErrInactiveEmployee):
		Forbidden(w, "Employee is not active")
	case errors.Is(err, employee.ErrUnknownLeaveType):
		BadRequest(w, "Unknown leave type", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Must check in first", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyReviewed):
		Conflict(w, "Leave request already reviewed")
	case errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, "Invalid leave request status", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Event domain errors
	case errors.Is(err, event.ErrEventNotFound):
		NotFound(w, "Company event not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
