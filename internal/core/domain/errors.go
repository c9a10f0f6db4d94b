package domain

import "errors"

var (
	ErrValidation         = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("email already registered")
	ErrItemNotFound       = errors.New("item not found")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)
