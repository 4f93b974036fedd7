package attendance

import (
	"fmt"
	"time"
)

// Attendance status values.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusLeave   = "leave"
)

// Attendance is one row per (employee, calendar date). The day state machine
// is NoRecord -> CheckedIn -> CheckedOut and both transitions are detected by
// the nullable timestamps, not by Status.
type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       string // "YYYY-MM-DD", the local workday
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     string
	TotalHours *string // "H:MM", truncated to whole minutes
}

// FormatTotalHours renders the elapsed time between check-in and check-out as
// "H:MM": whole hours, zero-padded minutes, truncated rather than rounded.
// Durations of 100 hours or more get no special casing.
func FormatTotalHours(checkIn, checkOut time.Time) string {
	elapsed := checkOut.Sub(checkIn)
	hours := int(elapsed / time.Hour)
	minutes := int(elapsed % time.Hour / time.Minute)
	return fmt.Sprintf("%d:%02d", hours, minutes)
}

// WorkdaysInMonth approximates the number of workdays as
// floor(daysInMonth * 5/7). Deliberately not calendar-aware.
func WorkdaysInMonth(year, month int) int {
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return daysInMonth * 5 / 7
}
