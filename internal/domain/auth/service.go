package auth

import (
	"context"

	"github.com/intek-hris/attendance-backend-go/internal/domain/employee"
)

// Service resolves credentials to an employee identity. Session issuance is
// the handler's job; this service only authenticates.
type Service interface {
	// Login verifies email and password against the employee record.
	Login(ctx context.Context, req LoginRequest) (employee.EmployeeResponse, error)

	// LoginWithGoogle maps a verified Google email onto an existing
	// employee. Unknown emails fail with ErrInvalidCredentials.
	LoginWithGoogle(ctx context.Context, email string, verified bool) (employee.EmployeeResponse, error)

	// Me returns the employee behind an already-resolved id.
	Me(ctx context.Context, employeeID int64) (employee.EmployeeResponse, error)
}
