package memory

import (
	"context"
	"sort"

	"github.com/intek-hris/attendance-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	store *Store
}

// NewEmployeeRepository creates a memory-backed employee repository.
func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.employees {
		if existing.Email == emp.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	emp.ID = r.store.nextEmployeeID
	r.store.nextEmployeeID++
	r.store.employees[emp.ID] = emp
	return emp, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	emp, ok := r.store.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, emp := range r.store.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	r.store.employees[emp.ID] = emp
	return nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	employees := make([]employee.Employee, 0, len(r.store.employees))
	for _, emp := range r.store.employees {
		employees = append(employees, emp)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })
	return employees, nil
}
