package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/intek-hris/attendance-backend-go/internal/domain/notification"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/sse"
)

type NotificationServiceImpl struct {
	notification.Repository
	hub *sse.Hub
}

func NewNotificationService(repo notification.Repository, hub *sse.Hub) notification.Service {
	return &NotificationServiceImpl{
		Repository: repo,
		hub:        hub,
	}
}

// Notify implements notification.Service. The stored record is the source of
// truth; the SSE publish is best-effort fan-out to open streams.
func (s *NotificationServiceImpl) Notify(ctx context.Context, employeeID int64, title, message string, notifType notification.NotificationType) (notification.Notification, error) {
	created, err := s.Repository.Create(ctx, notification.Notification{
		EmployeeID: employeeID,
		Title:      title,
		Message:    message,
		Type:       notifType,
		IsRead:     false,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	if s.hub != nil {
		s.hub.Publish(employeeID, sse.Event{
			EmployeeID: employeeID,
			Event:      "notification",
			Data:       notification.ToResponse(created),
		})
	}

	return created, nil
}

// List implements notification.Service.
func (s *NotificationServiceImpl) List(ctx context.Context, employeeID int64) ([]notification.NotificationResponse, error) {
	notifications, err := s.Repository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return notification.ToResponses(notifications), nil
}

// UnreadCount implements notification.Service.
func (s *NotificationServiceImpl) UnreadCount(ctx context.Context, employeeID int64) (int, error) {
	count, err := s.Repository.GetUnreadCount(ctx, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead implements notification.Service.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id int64) error {
	n, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.IsRead {
		return nil
	}
	n.IsRead = true
	if err := s.Repository.Update(ctx, n); err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}
