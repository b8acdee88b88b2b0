package usecase

import "errors"

var (
	ErrNotFound               = errors.New("not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInternal               = errors.New("internal error")
)

// ValidationError carries a message safe to surface to the client.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.msg
}
