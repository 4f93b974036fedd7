package memory

import (
	"context"
	"sort"

	"github.com/intek-hris/attendance-backend-go/internal/domain/notification"
)

type notificationRepository struct {
	store *Store
}

// NewNotificationRepository creates a memory-backed notification repository.
func NewNotificationRepository(store *Store) notification.Repository {
	return &notificationRepository{store: store}
}

func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n.ID = r.store.nextNotificationID
	r.store.nextNotificationID++
	r.store.notifications[n.ID] = n
	return n, nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id int64) (notification.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	n, ok := r.store.notifications[id]
	if !ok {
		return notification.Notification{}, notification.ErrNotificationNotFound
	}
	return n, nil
}

func (r *notificationRepository) GetByEmployeeID(ctx context.Context, employeeID int64) ([]notification.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	notifications := make([]notification.Notification, 0)
	for _, n := range r.store.notifications {
		if n.EmployeeID == employeeID {
			notifications = append(notifications, n)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (r *notificationRepository) GetUnreadCount(ctx context.Context, employeeID int64) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, n := range r.store.notifications {
		if n.EmployeeID == employeeID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *notificationRepository) Update(ctx context.Context, n notification.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.notifications[n.ID]; !ok {
		return notification.ErrNotificationNotFound
	}
	r.store.notifications[n.ID] = n
	return nil
}
