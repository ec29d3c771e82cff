package auth

import "errors"

// Domain errors for auth service
var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrNameRequired     = errors.New("full name is required")
	ErrPasswordMismatch = errors.New("passwords do not match")
)
