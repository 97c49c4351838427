package errors

import "errors"

var (
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrConflict             = errors.New("conflict")
	ErrUnavailable          = errors.New("unavailable")
)
