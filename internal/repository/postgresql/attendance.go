package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/intek-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

// NewAttendanceRepository creates a postgres-backed attendance repository.
// A unique index on (employee_id, date) backs the one-record-per-day
// invariant that the memory driver enforces by lookup-before-insert.
func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (employee_id, date, check_in, check_out, status, total_hours)
		VALUES ($1, $2::date, $3, $4, $5, $6)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Date, record.CheckIn, record.CheckOut,
		record.Status, record.TotalHours,
	).Scan(&record.ID)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date::text, check_in, check_out, status, total_hours
		FROM attendance_records
		WHERE id = $1
	`

	var record attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.EmployeeID, &record.Date,
		&record.CheckIn, &record.CheckOut, &record.Status, &record.TotalHours,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return record, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date::text, check_in, check_out, status, total_hours
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2::date
	`

	var record attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&record.ID, &record.EmployeeID, &record.Date,
		&record.CheckIn, &record.CheckOut, &record.Status, &record.TotalHours,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record by date: %w", err)
	}
	return &record, nil
}

func (r *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET check_in = $2, check_out = $3, status = $4, total_hours = $5
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID, record.CheckIn, record.CheckOut, record.Status, record.TotalHours,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func (r *attendanceRepository) GetHistory(ctx context.Context, employeeID int64, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date::text, check_in, check_out, status, total_hours
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance history: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func (r *attendanceRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID int64, year, month int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date::text, check_in, check_out, status, total_hours
		FROM attendance_records
		WHERE employee_id = $1
		  AND date >= $2::date
		  AND date < $3::date
		ORDER BY date
	`

	monthStart := fmt.Sprintf("%04d-%02d-01", year, month)
	nextYear, nextMonth := year, month+1
	if nextMonth > 12 {
		nextYear, nextMonth = year+1, 1
	}
	monthEnd := fmt.Sprintf("%04d-%02d-01", nextYear, nextMonth)

	rows, err := q.Query(ctx, query, employeeID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly attendance: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date::text, check_in, check_out, status, total_hours
		FROM attendance_records
		WHERE date = $1::date
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Attendance, error) {
	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var record attendance.Attendance
		err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Date,
			&record.CheckIn, &record.CheckOut, &record.Status, &record.TotalHours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
