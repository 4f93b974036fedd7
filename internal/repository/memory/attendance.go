package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/intek-hris/attendance-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	store *Store
}

// NewAttendanceRepository creates a memory-backed attendance repository.
func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	record.ID = r.store.nextAttendanceID
	r.store.nextAttendanceID++
	r.store.attendances[record.ID] = record
	return record, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	record, ok := r.store.attendances[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return record, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (*attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, record := range r.store.attendances {
		if record.EmployeeID == employeeID && record.Date == date {
			found := record
			return &found, nil
		}
	}
	return nil, nil
}

func (r *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.attendances[record.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	r.store.attendances[record.ID] = record
	return nil
}

func (r *attendanceRepository) GetHistory(ctx context.Context, employeeID int64, limit int) ([]attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := make([]attendance.Attendance, 0)
	for _, record := range r.store.attendances {
		if record.EmployeeID == employeeID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date > records[j].Date })
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (r *attendanceRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID int64, year, month int) ([]attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	records := make([]attendance.Attendance, 0)
	for _, record := range r.store.attendances {
		if record.EmployeeID == employeeID && len(record.Date) >= len(prefix) && record.Date[:len(prefix)] == prefix {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date < records[j].Date })
	return records, nil
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := make([]attendance.Attendance, 0)
	for _, record := range r.store.attendances {
		if record.Date == date {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}
