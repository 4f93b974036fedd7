// Package fixtures seeds the store with the default demo data: one employee,
// today's open attendance record, a few notifications and the company events
// calendar.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/intek-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/intek-hris/attendance-backend-go/internal/domain/employee"
	"github.com/intek-hris/attendance-backend-go/internal/domain/event"
	"github.com/intek-hris/attendance-backend-go/internal/domain/notification"
)

func strPtr(s string) *string { return &s }

// DefaultPassword is the seeded employee's login password.
const DefaultPassword = "password123"

type Repositories struct {
	Employees     employee.EmployeeRepository
	Attendance    attendance.AttendanceRepository
	Notifications notification.Repository
	Events        event.EventRepository
}

// Seed populates an empty store. It is not idempotent; call it once on a
// fresh store only.
func Seed(ctx context.Context, repos Repositories) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}

	emp, err := repos.Employees.Create(ctx, employee.Employee{
		EmployeeCode: "EMP-2024-001",
		Name:         "Ahmad Sutrisno",
		Email:        "ahmad.sutrisno@intek.co.id",
		PasswordHash: string(hash),
		Position:     "IT Developer",
		Department:   "Information Technology",
		Manager:      strPtr("Budi Setiawan"),
		Phone:        strPtr("+62 812-3456-7890"),
		Address:      strPtr("Jl. Sudirman No. 123, Jakarta Pusat, DKI Jakarta 10220"),
		JoinDate:     time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:       "active",

		AnnualLeaveBalance:    8,
		SickLeaveBalance:      10,
		PersonalLeaveBalance:  9,
		EmergencyLeaveBalance: 5,
		MaternityLeaveBalance: 90,
		PaternityLeaveBalance: 14,
	})
	if err != nil {
		return fmt.Errorf("failed to seed employee: %w", err)
	}

	now := time.Now().UTC()
	checkIn := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, time.UTC)
	_, err = repos.Attendance.Create(ctx, attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       now.Format("2006-01-02"),
		CheckIn:    &checkIn,
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		return fmt.Errorf("failed to seed attendance record: %w", err)
	}

	notifications := []notification.Notification{
		{
			EmployeeID: emp.ID,
			Title:      "Pengajuan cuti disetujui",
			Message:    "Pengajuan cuti tahunan Anda untuk tanggal 18-19 Januari 2024 telah disetujui oleh manager.",
			Type:       notification.TypeLeave,
			IsRead:     false,
			CreatedAt:  now.Add(-2 * time.Hour),
		},
		{
			EmployeeID: emp.ID,
			Title:      "Pengumuman: Rapat Tim Bulanan",
			Message:    "Rapat tim bulanan akan diadakan pada Kamis, 18 Januari 2024 pukul 09:00 WIB di ruang meeting.",
			Type:       notification.TypeAnnouncement,
			IsRead:     false,
			CreatedAt:  now.Add(-24 * time.Hour),
		},
		{
			EmployeeID: emp.ID,
			Title:      "Reminder: Check Out",
			Message:    "Jangan lupa untuk melakukan check out sebelum meninggalkan kantor.",
			Type:       notification.TypeReminder,
			IsRead:     true,
			CreatedAt:  now.Add(-3 * 24 * time.Hour),
		},
	}
	for _, n := range notifications {
		if _, err := repos.Notifications.Create(ctx, n); err != nil {
			return fmt.Errorf("failed to seed notification: %w", err)
		}
	}

	events := []event.CompanyEvent{
		{
			Title:       "Rapat Tim Bulanan",
			Description: strPtr("Diskusi progress proyek dan planning bulan depan"),
			Date:        "2024-01-18",
			Time:        strPtr("09:00"),
			Location:    strPtr("Ruang Meeting A"),
			Type:        event.TypeMeeting,
		},
		{
			Title:       "Training Keamanan IT",
			Description: strPtr("Pelatihan awareness keamanan untuk seluruh karyawan"),
			Date:        "2024-01-20",
			Time:        strPtr("13:00"),
			Location:    strPtr("Aula Utama"),
			Type:        event.TypeTraining,
		},
		{
			Title:       "Company Gathering",
			Description: strPtr("Acara gathering bulanan seluruh karyawan"),
			Date:        "2024-01-25",
			Time:        strPtr("18:00"),
			Location:    strPtr("Restaurant XYZ"),
			Type:        event.TypeGathering,
		},
	}
	for _, e := range events {
		if _, err := repos.Events.Create(ctx, e); err != nil {
			return fmt.Errorf("failed to seed company event: %w", err)
		}
	}

	return nil
}
