package notification

import "context"

// Service is the notification surface other services call into. Notify is
// the only way notifications come into existence; users never create them
// directly.
type Service interface {
	Notify(ctx context.Context, employeeID int64, title, message string, notifType NotificationType) (Notification, error)

	List(ctx context.Context, employeeID int64) ([]NotificationResponse, error)

	UnreadCount(ctx context.Context, employeeID int64) (int, error)

	// MarkRead is idempotent: marking an already-read notification is a
	// no-op, not an error.
	MarkRead(ctx context.Context, id int64) error
}
