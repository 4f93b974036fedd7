package employee

import "context"

// EmployeeService covers profile reads and the profile-update operations.
// Provisioning happens outside this service; leave balances change only
// through leave approval.
type EmployeeService interface {
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (EmployeeResponse, error)
	ChangePassword(ctx context.Context, id int64, req ChangePasswordRequest) error
	UpdateAvatar(ctx context.Context, id int64, avatarURL string) (EmployeeResponse, error)
}
