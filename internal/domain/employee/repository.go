package employee

import "context"

// EmployeeRepository defines data access for employees. Implementations must
// return ErrEmployeeNotFound for unknown ids so services can translate it at
// the request boundary.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	List(ctx context.Context) ([]Employee, error)
}
