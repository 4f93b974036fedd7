package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/intek-hris/attendance-backend-go/internal/domain/leave"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

// NewLeaveRequestRepository creates a postgres-backed leave request repository.
func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, type, start_date, end_date, duration, reason,
			status, submitted_at, reviewed_at, reviewed_by, comments
		)
		VALUES ($1, $2, $3::date, $4::date, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.Type, request.StartDate, request.EndDate,
		request.Duration, request.Reason, string(request.Status),
		request.SubmittedAt, request.ReviewedAt, request.ReviewedBy, request.Comments,
	).Scan(&request.ID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, start_date::text, end_date::text, duration, reason,
		       status, submitted_at, reviewed_at, reviewed_by, comments
		FROM leave_requests
		WHERE id = $1
	`

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return request, nil
}

func (r *leaveRequestRepository) GetByEmployeeID(ctx context.Context, employeeID int64) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, start_date::text, end_date::text, duration, reason,
		       status, submitted_at, reviewed_at, reviewed_by, comments
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY submitted_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func (r *leaveRequestRepository) Update(ctx context.Context, request leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, reviewed_at = $3, reviewed_by = $4, comments = $5
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		request.ID, string(request.Status),
		request.ReviewedAt, request.ReviewedBy, request.Comments,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepository) CountByStatus(ctx context.Context, status leave.LeaveRequestStatus) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, string(status)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count leave requests: %w", err)
	}
	return count, nil
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var request leave.LeaveRequest
	var status string
	err := row.Scan(
		&request.ID, &request.EmployeeID, &request.Type,
		&request.StartDate, &request.EndDate, &request.Duration, &request.Reason,
		&status, &request.SubmittedAt, &request.ReviewedAt,
		&request.ReviewedBy, &request.Comments,
	)
	request.Status = leave.LeaveRequestStatus(status)
	return request, err
}
