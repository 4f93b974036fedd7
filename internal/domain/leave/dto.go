package leave

import (
	"strings"
	"time"

	"github.com/intek-hris/attendance-backend-go/internal/pkg/validator"
)

const minReasonLength = 10

// SubmitRequest is the payload for a new leave request. Validation covers
// shape only; remaining balance and overlap with other approved leave are
// deliberately not checked at submission time.
type SubmitRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Duration   string `json:"duration"`
	Reason     string `json:"reason"`
}

func (r SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsInSlice(r.Type, LeaveTypes) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown leave type"})
	}
	if !validator.IsInSlice(r.Duration, Durations) {
		errs = append(errs, validator.ValidationError{Field: "duration", Message: "duration must be full, half or hours"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date cannot be before start_date"})
	}

	if len(strings.TrimSpace(r.Reason)) < minReasonLength {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason must be at least 10 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReviewRequest carries a review decision. Reviewer identity is supplied by
// the caller and not verified against a role model.
type ReviewRequest struct {
	Status   string  `json:"status"`
	Comments *string `json:"comments"`
}

func (r ReviewRequest) Validate() error {
	switch LeaveRequestStatus(r.Status) {
	case StatusApproved, StatusRejected, StatusCancelled:
		return nil
	}
	return ErrInvalidStatus
}

// LeaveRequestResponse is the JSON projection of a leave request.
type LeaveRequestResponse struct {
	ID          int64   `json:"id"`
	EmployeeID  int64   `json:"employee_id"`
	Type        string  `json:"type"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Duration    string  `json:"duration"`
	Reason      string  `json:"reason"`
	Status      string  `json:"status"`
	SubmittedAt string  `json:"submitted_at"`
	ReviewedAt  *string `json:"reviewed_at"`
	ReviewedBy  *string `json:"reviewed_by"`
	Comments    *string `json:"comments"`
}

func ToResponse(r LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Type:        r.Type,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Duration:    r.Duration,
		Reason:      r.Reason,
		Status:      string(r.Status),
		SubmittedAt: r.SubmittedAt.Format(time.RFC3339),
		ReviewedBy:  r.ReviewedBy,
		Comments:    r.Comments,
	}
	if r.ReviewedAt != nil {
		formatted := r.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &formatted
	}
	return resp
}

func ToResponses(requests []LeaveRequest) []LeaveRequestResponse {
	responses := make([]LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, ToResponse(r))
	}
	return responses
}
