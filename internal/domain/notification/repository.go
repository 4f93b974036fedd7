package notification

import "context"

// Repository defines the notification repository interface
type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	GetByID(ctx context.Context, id int64) (Notification, error)

	// GetByEmployeeID returns all notifications for an employee, newest
	// first.
	GetByEmployeeID(ctx context.Context, employeeID int64) ([]Notification, error)

	GetUnreadCount(ctx context.Context, employeeID int64) (int, error)
	Update(ctx context.Context, n Notification) error
}
