package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired session token")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrEmailNotVerified   = errors.New("google account email is not verified")
)
