package memory

import (
	"context"
	"sort"

	"github.com/intek-hris/attendance-backend-go/internal/domain/leave"
)

type leaveRequestRepository struct {
	store *Store
}

// NewLeaveRequestRepository creates a memory-backed leave request repository.
func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepository{store: store}
}

func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	request.ID = r.store.nextLeaveRequestID
	r.store.nextLeaveRequestID++
	r.store.leaveRequests[request.ID] = request
	return request, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	request, ok := r.store.leaveRequests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (r *leaveRequestRepository) GetByEmployeeID(ctx context.Context, employeeID int64) ([]leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	requests := make([]leave.LeaveRequest, 0)
	for _, request := range r.store.leaveRequests {
		if request.EmployeeID == employeeID {
			requests = append(requests, request)
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].SubmittedAt.After(requests[j].SubmittedAt)
	})
	return requests, nil
}

func (r *leaveRequestRepository) Update(ctx context.Context, request leave.LeaveRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.leaveRequests[request.ID]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	r.store.leaveRequests[request.ID] = request
	return nil
}

func (r *leaveRequestRepository) CountByStatus(ctx context.Context, status leave.LeaveRequestStatus) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, request := range r.store.leaveRequests {
		if request.Status == status {
			count++
		}
	}
	return count, nil
}
