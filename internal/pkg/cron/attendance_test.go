package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intek-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/intek-hris/attendance-backend-go/internal/domain/employee"
	"github.com/intek-hris/attendance-backend-go/internal/domain/notification"
	"github.com/intek-hris/attendance-backend-go/internal/repository/memory"
	notificationService "github.com/intek-hris/attendance-backend-go/internal/service/notification"
)

type jobEnv struct {
	jobs             *AttendanceJobs
	employeeRepo     employee.EmployeeRepository
	attendanceRepo   attendance.AttendanceRepository
	notificationRepo notification.Repository
}

func newJobEnv(t *testing.T) *jobEnv {
	t.Helper()

	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	notificationRepo := memory.NewNotificationRepository(store)
	notifSvc := notificationService.NewNotificationService(notificationRepo, nil)

	return &jobEnv{
		jobs:             NewAttendanceJobs(attendanceRepo, employeeRepo, notifSvc),
		employeeRepo:     employeeRepo,
		attendanceRepo:   attendanceRepo,
		notificationRepo: notificationRepo,
	}
}

func (e *jobEnv) addEmployee(t *testing.T, name, status string) employee.Employee {
	t.Helper()
	emp, err := e.employeeRepo.Create(context.Background(), employee.Employee{
		EmployeeCode: "EMP-" + name,
		Name:         name,
		Email:        name + "@example.com",
		Status:       status,
	})
	require.NoError(t, err)
	return emp
}

func TestSendCheckoutReminders(t *testing.T) {
	env := newJobEnv(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 8, 17, 0, 0, 0, time.UTC)
	today := now.Format("2006-01-02")

	stillIn := env.addEmployee(t, "still-in", "active")
	checkedOut := env.addEmployee(t, "checked-out", "active")

	checkIn := now.Add(-8 * time.Hour)
	checkOut := now.Add(-time.Hour)
	_, err := env.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: stillIn.ID, Date: today, CheckIn: &checkIn, Status: attendance.StatusPresent,
	})
	require.NoError(t, err)
	_, err = env.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: checkedOut.ID, Date: today, CheckIn: &checkIn, CheckOut: &checkOut, Status: attendance.StatusPresent,
	})
	require.NoError(t, err)

	require.NoError(t, env.jobs.sendCheckoutReminders(ctx, now))

	count, err := env.notificationRepo.GetUnreadCount(ctx, stillIn.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = env.notificationRepo.GetUnreadCount(ctx, checkedOut.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// A second run the same day reminds again; dedup is not this job's concern.
	require.NoError(t, env.jobs.sendCheckoutReminders(ctx, now.Add(time.Minute)))
	count, err = env.notificationRepo.GetUnreadCount(ctx, stillIn.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMarkAbsentEmployees(t *testing.T) {
	env := newJobEnv(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 9, 0, 5, 0, 0, time.UTC)
	yesterday := "2024-03-08"

	missing := env.addEmployee(t, "missing", "active")
	attended := env.addEmployee(t, "attended", "active")
	inactive := env.addEmployee(t, "inactive", "inactive")

	checkIn := time.Date(2024, 3, 8, 8, 0, 0, 0, time.UTC)
	_, err := env.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: attended.ID, Date: yesterday, CheckIn: &checkIn, Status: attendance.StatusPresent,
	})
	require.NoError(t, err)

	require.NoError(t, env.jobs.markAbsentEmployees(ctx, now))

	record, err := env.attendanceRepo.GetByEmployeeAndDate(ctx, missing.ID, yesterday)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, attendance.StatusAbsent, record.Status)
	assert.Nil(t, record.CheckIn)

	record, err = env.attendanceRepo.GetByEmployeeAndDate(ctx, attended.ID, yesterday)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, attendance.StatusPresent, record.Status)

	record, err = env.attendanceRepo.GetByEmployeeAndDate(ctx, inactive.ID, yesterday)
	require.NoError(t, err)
	assert.Nil(t, record)

	// Re-running does not duplicate or overwrite.
	require.NoError(t, env.jobs.markAbsentEmployees(ctx, now))
	record, err = env.attendanceRepo.GetByEmployeeAndDate(ctx, missing.ID, yesterday)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, attendance.StatusAbsent, record.Status)
}

func TestSchedulerRunsJobs(t *testing.T) {
	scheduler := NewScheduler()
	ran := make(chan struct{}, 1)
	scheduler.AddJob("probe", 10*time.Millisecond, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	scheduler.Start()
	defer scheduler.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled job never ran")
	}
}
