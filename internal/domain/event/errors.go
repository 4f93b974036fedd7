package event

import "errors"

var (
	ErrEventNotFound = errors.New("company event not found")
)
