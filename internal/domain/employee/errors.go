package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrWrongPassword    = errors.New("current password is incorrect")
	ErrInactiveEmployee = errors.New("employee is not active")
	ErrUnknownLeaveType = errors.New("unknown leave type")
)
