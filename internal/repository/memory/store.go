package memory

import (
	"context"
	"sync"

	"github.com/intek-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/intek-hris/attendance-backend-go/internal/domain/employee"
	"github.com/intek-hris/attendance-backend-go/internal/domain/event"
	"github.com/intek-hris/attendance-backend-go/internal/domain/leave"
	"github.com/intek-hris/attendance-backend-go/internal/domain/notification"
)

// Store is the in-memory record store: one map per entity type behind one
// RWMutex, with independent auto-increment counters per table. It implements
// the same repository interfaces as the postgres driver, so either can sit
// behind the services.
type Store struct {
	mu sync.RWMutex

	employees     map[int64]employee.Employee
	attendances   map[int64]attendance.Attendance
	leaveRequests map[int64]leave.LeaveRequest
	notifications map[int64]notification.Notification
	events        map[int64]event.CompanyEvent

	nextEmployeeID     int64
	nextAttendanceID   int64
	nextLeaveRequestID int64
	nextNotificationID int64
	nextEventID        int64
}

type transactor struct{}

// NewTransactor satisfies leave.Transactor for the memory driver. The store
// has no transactions; mutations are already serialized by the store mutex
// and the services' per-employee locks, so fn just runs.
func NewTransactor(store *Store) leave.Transactor {
	return transactor{}
}

func (transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		employees:     make(map[int64]employee.Employee),
		attendances:   make(map[int64]attendance.Attendance),
		leaveRequests: make(map[int64]leave.LeaveRequest),
		notifications: make(map[int64]notification.Notification),
		events:        make(map[int64]event.CompanyEvent),

		nextEmployeeID:     1,
		nextAttendanceID:   1,
		nextLeaveRequestID: 1,
		nextNotificationID: 1,
		nextEventID:        1,
	}
}
