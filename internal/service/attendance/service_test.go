package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/intek-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/intek-hris/attendance-backend-go/internal/domain/employee"
	"github.com/intek-hris/attendance-backend-go/internal/repository/memory"
)

func newTestService(t *testing.T) (domain.AttendanceService, int64) {
	t.Helper()

	store := memory.NewStore()
	employeeRepo := memory.NewEmployeeRepository(store)
	emp, err := employeeRepo.Create(context.Background(), employee.Employee{
		EmployeeCode: "EMP-2024-001",
		Name:         "Ahmad Sutrisno",
		Email:        "ahmad.sutrisno@intek.co.id",
		Status:       "active",
	})
	require.NoError(t, err)

	svc := NewAttendanceService(memory.NewAttendanceRepository(store), employeeRepo)
	return svc, emp.ID
}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	t.Run("creates today's record", func(t *testing.T) {
		svc, empID := newTestService(t)

		record, err := svc.CheckIn(ctx, empID, now)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-04", record.Date)
		assert.Equal(t, domain.StatusPresent, record.Status)
		require.NotNil(t, record.CheckIn)
		assert.Nil(t, record.CheckOut)
		assert.Nil(t, record.TotalHours)
	})

	t.Run("rejects a second check-in the same day", func(t *testing.T) {
		svc, empID := newTestService(t)

		_, err := svc.CheckIn(ctx, empID, now)
		require.NoError(t, err)

		_, err = svc.CheckIn(ctx, empID, now.Add(time.Hour))
		assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
	})

	t.Run("allows check-in on the next day", func(t *testing.T) {
		svc, empID := newTestService(t)

		_, err := svc.CheckIn(ctx, empID, now)
		require.NoError(t, err)

		record, err := svc.CheckIn(ctx, empID, now.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, "2024-03-05", record.Date)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.CheckIn(ctx, 999, now)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("concurrent check-ins produce one record", func(t *testing.T) {
		svc, empID := newTestService(t)

		const attempts = 16
		var wg sync.WaitGroup
		errs := make([]error, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = svc.CheckIn(ctx, empID, now)
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
			}
		}
		assert.Equal(t, 1, succeeded)
	})
}

func TestCheckOut(t *testing.T) {
	ctx := context.Background()
	checkIn := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	t.Run("closes the day and formats total hours", func(t *testing.T) {
		svc, empID := newTestService(t)

		_, err := svc.CheckIn(ctx, empID, checkIn)
		require.NoError(t, err)

		record, err := svc.CheckOut(ctx, empID, checkIn.Add(9*time.Hour+30*time.Minute))
		require.NoError(t, err)
		require.NotNil(t, record.TotalHours)
		assert.Equal(t, "9:30", *record.TotalHours)
		require.NotNil(t, record.CheckOut)
	})

	t.Run("without a check-in", func(t *testing.T) {
		svc, empID := newTestService(t)

		_, err := svc.CheckOut(ctx, empID, checkIn.Add(9*time.Hour))
		assert.ErrorIs(t, err, domain.ErrNotCheckedIn)
	})

	t.Run("twice in one day", func(t *testing.T) {
		svc, empID := newTestService(t)

		_, err := svc.CheckIn(ctx, empID, checkIn)
		require.NoError(t, err)
		_, err = svc.CheckOut(ctx, empID, checkIn.Add(8*time.Hour))
		require.NoError(t, err)

		_, err = svc.CheckOut(ctx, empID, checkIn.Add(9*time.Hour))
		assert.ErrorIs(t, err, domain.ErrAlreadyCheckedOut)
	})
}

func TestGetToday(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	svc, empID := newTestService(t)

	record, err := svc.GetToday(ctx, empID, now)
	require.NoError(t, err)
	assert.Nil(t, record)

	_, err = svc.CheckIn(ctx, empID, now)
	require.NoError(t, err)

	record, err = svc.GetToday(ctx, empID, now)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "2024-03-04", record.Date)
}

func TestGetHistory(t *testing.T) {
	ctx := context.Background()
	svc, empID := newTestService(t)

	// Five consecutive closed days.
	for day := 4; day <= 8; day++ {
		in := time.Date(2024, 3, day, 8, 0, 0, 0, time.UTC)
		_, err := svc.CheckIn(ctx, empID, in)
		require.NoError(t, err)
		_, err = svc.CheckOut(ctx, empID, in.Add(9*time.Hour))
		require.NoError(t, err)
	}

	history, err := svc.GetHistory(ctx, empID, 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "2024-03-08", history[0].Date)
	assert.Equal(t, "2024-03-07", history[1].Date)
	assert.Equal(t, "2024-03-06", history[2].Date)
}

func TestGetMonthlyStats(t *testing.T) {
	ctx := context.Background()
	svc, empID := newTestService(t)

	for day := 4; day <= 6; day++ {
		_, err := svc.CheckIn(ctx, empID, time.Date(2024, 2, day, 8, 0, 0, 0, time.UTC))
		require.NoError(t, err)
	}
	// A record in another month must not count.
	_, err := svc.CheckIn(ctx, empID, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	stats, err := svc.GetMonthlyStats(ctx, empID, 2024, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Present)
	assert.Equal(t, 20, stats.Total) // 29 days * 5/7
}
