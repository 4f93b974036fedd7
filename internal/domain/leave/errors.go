package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAlreadyReviewed      = errors.New("leave request already reviewed")
	ErrInvalidStatus        = errors.New("invalid leave request status")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
)
