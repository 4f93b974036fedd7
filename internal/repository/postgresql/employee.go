package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/intek-hris/attendance-backend-go/internal/domain/employee"
	"github.com/intek-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

// NewEmployeeRepository creates a postgres-backed employee repository.
func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, employee_code, name, email, password_hash, position, department,
	manager, phone, address, avatar_url, join_date, status,
	annual_leave_balance, sick_leave_balance, personal_leave_balance,
	emergency_leave_balance, maternity_leave_balance, paternity_leave_balance
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.Name, &emp.Email, &emp.PasswordHash,
		&emp.Position, &emp.Department, &emp.Manager, &emp.Phone, &emp.Address,
		&emp.AvatarURL, &emp.JoinDate, &emp.Status,
		&emp.AnnualLeaveBalance, &emp.SickLeaveBalance, &emp.PersonalLeaveBalance,
		&emp.EmergencyLeaveBalance, &emp.MaternityLeaveBalance, &emp.PaternityLeaveBalance,
	)
	return emp, err
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_code, name, email, password_hash, position, department,
			manager, phone, address, avatar_url, join_date, status,
			annual_leave_balance, sick_leave_balance, personal_leave_balance,
			emergency_leave_balance, maternity_leave_balance, paternity_leave_balance
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		emp.EmployeeCode, emp.Name, emp.Email, emp.PasswordHash,
		emp.Position, emp.Department, emp.Manager, emp.Phone, emp.Address,
		emp.AvatarURL, emp.JoinDate, emp.Status,
		emp.AnnualLeaveBalance, emp.SickLeaveBalance, emp.PersonalLeaveBalance,
		emp.EmergencyLeaveBalance, emp.MaternityLeaveBalance, emp.PaternityLeaveBalance,
	).Scan(&emp.ID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE id = $1`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE email = $1`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	return emp, nil
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			name = $2, email = $3, password_hash = $4, position = $5,
			department = $6, manager = $7, phone = $8, address = $9,
			avatar_url = $10, status = $11,
			annual_leave_balance = $12, sick_leave_balance = $13,
			personal_leave_balance = $14, emergency_leave_balance = $15,
			maternity_leave_balance = $16, paternity_leave_balance = $17
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.Name, emp.Email, emp.PasswordHash, emp.Position,
		emp.Department, emp.Manager, emp.Phone, emp.Address,
		emp.AvatarURL, emp.Status,
		emp.AnnualLeaveBalance, emp.SickLeaveBalance,
		emp.PersonalLeaveBalance, emp.EmergencyLeaveBalance,
		emp.MaternityLeaveBalance, emp.PaternityLeaveBalance,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees ORDER BY id`, employeeColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}
