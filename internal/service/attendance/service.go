package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/intek-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/intek-hris/attendance-backend-go/internal/domain/employee"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/keylock"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	locks *keylock.KeyLock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		locks:                keylock.New(),
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID int64, now time.Time) (attendance.AttendanceResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Serialize per employee so two concurrent requests cannot both pass
	// the lookup-before-insert guard.
	unlock := s.locks.Lock(employeeID)
	defer unlock()

	date := now.Format("2006-01-02")

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}
	if existing != nil && existing.CheckIn != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	checkIn := now
	if existing != nil {
		existing.CheckIn = &checkIn
		existing.Status = attendance.StatusPresent
		if err := s.AttendanceRepository.Update(ctx, *existing); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
		}
		return attendance.ToResponse(*existing), nil
	}

	record, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    &checkIn,
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.ToResponse(record), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID int64, now time.Time) (attendance.AttendanceResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	unlock := s.locks.Lock(employeeID)
	defer unlock()

	date := now.Format("2006-01-02")

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}
	if record == nil || record.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	checkOut := now
	total := attendance.FormatTotalHours(*record.CheckIn, checkOut)
	record.CheckOut = &checkOut
	record.TotalHours = &total

	if err := s.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return attendance.ToResponse(*record), nil
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID int64, now time.Time) (*attendance.AttendanceResponse, error) {
	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, now.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to look up today's record: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	resp := attendance.ToResponse(*record)
	return &resp, nil
}

// GetHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetHistory(ctx context.Context, employeeID int64, limit int) ([]attendance.AttendanceResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	records, err := s.AttendanceRepository.GetHistory(ctx, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance history: %w", err)
	}
	return attendance.ToResponses(records), nil
}

// GetMonthlyStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthlyStats(ctx context.Context, employeeID int64, year, month int) (attendance.MonthlyStatsResponse, error) {
	records, err := s.AttendanceRepository.GetByEmployeeAndMonth(ctx, employeeID, year, month)
	if err != nil {
		return attendance.MonthlyStatsResponse{}, fmt.Errorf("failed to fetch monthly records: %w", err)
	}

	present := 0
	for _, r := range records {
		if r.Status == attendance.StatusPresent {
			present++
		}
	}

	return attendance.MonthlyStatsResponse{
		Present: present,
		Total:   attendance.WorkdaysInMonth(year, month),
	}, nil
}
