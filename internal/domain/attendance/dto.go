package attendance

import "time"

// AttendanceResponse is the JSON projection of a day record.
type AttendanceResponse struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Status     string  `json:"status"`
	TotalHours *string `json:"total_hours"`
}

// CheckRequest identifies the employee performing a check-in or check-out.
type CheckRequest struct {
	EmployeeID int64 `json:"employee_id"`
}

// MonthlyStatsResponse reports presence against the approximated workday
// total for a month.
type MonthlyStatsResponse struct {
	Present int `json:"present"`
	Total   int `json:"total"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		CheckIn:    timePtrToString(a.CheckIn),
		CheckOut:   timePtrToString(a.CheckOut),
		Status:     a.Status,
		TotalHours: a.TotalHours,
	}
}

func ToResponses(records []Attendance) []AttendanceResponse {
	responses := make([]AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, ToResponse(r))
	}
	return responses
}
