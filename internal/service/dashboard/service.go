package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/intek-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/intek-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/intek-hris/attendance-backend-go/internal/domain/employee"
	"github.com/intek-hris/attendance-backend-go/internal/domain/leave"
)

type DashboardServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	leave.LeaveRequestRepository
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
) dashboard.Service {
	return &DashboardServiceImpl{
		EmployeeRepository:     employeeRepo,
		AttendanceRepository:   attendanceRepo,
		LeaveRequestRepository: leaveRepo,
	}
}

// Summary implements dashboard.Service. Absent is the remainder after the
// recorded statuses: active employees with no record today count as absent.
func (s *DashboardServiceImpl) Summary(ctx context.Context, now time.Time) (dashboard.Summary, error) {
	date := now.Format("2006-01-02")

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("failed to list attendance for %s: %w", date, err)
	}

	pending, err := s.LeaveRequestRepository.CountByStatus(ctx, leave.StatusPending)
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("failed to count pending leave requests: %w", err)
	}

	headcount := 0
	byDepartment := make(map[string]int)
	for _, emp := range employees {
		if emp.Status != "active" {
			continue
		}
		headcount++
		byDepartment[emp.Department]++
	}

	summary := dashboard.Summary{
		Date:          date,
		Headcount:     headcount,
		PendingLeaves: pending,
	}

	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusLate:
			summary.Late++
		case attendance.StatusLeave:
			summary.OnLeave++
		}
	}

	summary.Absent = headcount - summary.Present - summary.Late - summary.OnLeave
	if summary.Absent < 0 {
		summary.Absent = 0
	}
	if headcount > 0 {
		summary.AttendanceRate = float64(summary.Present+summary.Late) / float64(headcount) * 100
	}

	departments := make([]dashboard.DepartmentBreakdown, 0, len(byDepartment))
	for dept, count := range byDepartment {
		departments = append(departments, dashboard.DepartmentBreakdown{
			Department: dept,
			Headcount:  count,
		})
	}
	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Department < departments[j].Department
	})
	summary.Departments = departments

	return summary, nil
}
