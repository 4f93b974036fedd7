package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/intek-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/intek-hris/attendance-backend-go/internal/domain/employee"
	"github.com/intek-hris/attendance-backend-go/internal/domain/notification"
)

type AttendanceJobs struct {
	attendanceRepo  attendance.AttendanceRepository
	employeeRepo    employee.EmployeeRepository
	notificationSvc notification.Service
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	notificationSvc notification.Service,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		notificationSvc: notificationSvc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("checkout_reminder", 1*time.Hour, j.SendCheckoutReminders)
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// SendCheckoutReminders nudges employees who checked in today but never
// checked out. Gated to the 17:00-17:59 UTC window so the hourly tick fires
// it once per day.
func (j *AttendanceJobs) SendCheckoutReminders(ctx context.Context) error {
	if time.Now().UTC().Hour() != 17 {
		return nil
	}
	return j.sendCheckoutReminders(ctx, time.Now().UTC())
}

func (j *AttendanceJobs) sendCheckoutReminders(ctx context.Context, now time.Time) error {
	slog.Info("Cron: Starting checkout reminder job")

	records, err := j.attendanceRepo.ListByDate(ctx, now.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("failed to list today's attendance: %w", err)
	}

	reminded := 0
	for _, record := range records {
		if record.CheckIn == nil || record.CheckOut != nil {
			continue
		}
		_, err := j.notificationSvc.Notify(ctx, record.EmployeeID,
			"Reminder: Check Out",
			"Don't forget to check out before leaving the office today.",
			notification.TypeReminder)
		if err != nil {
			slog.Error("Cron: Failed to send checkout reminder",
				"employee_id", record.EmployeeID, "error", err)
			continue
		}
		reminded++
	}

	slog.Info("Cron: Checkout reminders sent", "count", reminded)
	return nil
}

// MarkAbsentEmployees backfills an absent record for every active employee
// who has no attendance record for yesterday. Gated to the midnight hour.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	if time.Now().UTC().Hour() != 0 {
		return nil
	}
	return j.markAbsentEmployees(ctx, time.Now().UTC())
}

func (j *AttendanceJobs) markAbsentEmployees(ctx context.Context, now time.Time) error {
	slog.Info("Cron: Starting mark absent employees job")

	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	employees, err := j.employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	marked := 0
	for _, emp := range employees {
		if emp.Status != "active" {
			continue
		}

		existing, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to look up attendance",
				"employee_id", emp.ID, "date", yesterday, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		_, err = j.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       yesterday,
			Status:     attendance.StatusAbsent,
		})
		if err != nil {
			slog.Error("Cron: Failed to create absence record",
				"employee_id", emp.ID, "date", yesterday, "error", err)
			continue
		}
		marked++
	}

	slog.Info("Cron: Marked absent employees", "count", marked, "date", yesterday)
	return nil
}
