package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/intek-hris/attendance-backend-go/internal/domain/notification"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/sse"
	"github.com/intek-hris/attendance-backend-go/internal/repository/memory"
)

func newTestService(t *testing.T) (domain.Service, *sse.Hub) {
	t.Helper()
	hub := sse.NewHub()
	return NewNotificationService(memory.NewNotificationRepository(memory.NewStore()), hub), hub
}

func TestNotify(t *testing.T) {
	ctx := context.Background()
	svc, hub := newTestService(t)

	events, cleanup := hub.Subscribe(1)
	defer cleanup()

	created, err := svc.Notify(ctx, 1, "Checked In", "You checked in at 08:00.", domain.TypeAttendance)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.IsRead)

	select {
	case event := <-events:
		assert.Equal(t, "notification", event.Event)
		assert.EqualValues(t, 1, event.EmployeeID)
	case <-time.After(time.Second):
		t.Fatal("expected an SSE event for the notified employee")
	}
}

func TestListIsNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Notify(ctx, 1, "first", "first message", domain.TypeLeave)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = svc.Notify(ctx, 1, "second", "second message", domain.TypeLeave)
	require.NoError(t, err)
	_, err = svc.Notify(ctx, 2, "other employee", "not yours", domain.TypeLeave)
	require.NoError(t, err)

	notifications, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "second", notifications[0].Title)
	assert.Equal(t, "first", notifications[1].Title)
}

func TestUnreadCount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	count, err := svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	first, err := svc.Notify(ctx, 1, "a", "a", domain.TypeReminder)
	require.NoError(t, err)
	_, err = svc.Notify(ctx, 1, "b", "b", domain.TypeReminder)
	require.NoError(t, err)

	count, err = svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, svc.MarkRead(ctx, first.ID))

	count, err = svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.Notify(ctx, 1, "a", "a", domain.TypeReminder)
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(ctx, created.ID))
	require.NoError(t, svc.MarkRead(ctx, created.ID))

	count, err := svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMarkReadUnknownID(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.MarkRead(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}
