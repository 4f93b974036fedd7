package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/intek-hris/attendance-backend-go/internal/domain/auth"
	"github.com/intek-hris/attendance-backend-go/internal/domain/employee"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
}

func NewAuthService(repo employee.EmployeeRepository) auth.Service {
	return &AuthServiceImpl{EmployeeRepository: repo}
}

// Login implements auth.Service. Unknown emails and wrong passwords return
// the same error so the response does not leak which emails exist.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, auth.ErrInvalidCredentials
		}
		return employee.EmployeeResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return employee.EmployeeResponse{}, auth.ErrInvalidCredentials
	}

	if emp.Status != "active" {
		return employee.EmployeeResponse{}, employee.ErrInactiveEmployee
	}

	return employee.ToResponse(emp), nil
}

// LoginWithGoogle implements auth.Service.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, email string, verified bool) (employee.EmployeeResponse, error) {
	if !verified {
		return employee.EmployeeResponse{}, auth.ErrEmailNotVerified
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, auth.ErrInvalidCredentials
		}
		return employee.EmployeeResponse{}, err
	}

	if emp.Status != "active" {
		return employee.EmployeeResponse{}, employee.ErrInactiveEmployee
	}

	return employee.ToResponse(emp), nil
}

// Me implements auth.Service.
func (s *AuthServiceImpl) Me(ctx context.Context, employeeID int64) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}
