package notification

import "time"

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeAttendance   NotificationType = "attendance"
	TypeLeave        NotificationType = "leave"
	TypeAnnouncement NotificationType = "announcement"
	TypeReminder     NotificationType = "reminder"
)

// Notification is an append-only message to one employee. IsRead moves
// false -> true once; notifications are never deleted.
type Notification struct {
	ID         int64
	EmployeeID int64
	Title      string
	Message    string
	Type       NotificationType
	IsRead     bool
	CreatedAt  time.Time
}
