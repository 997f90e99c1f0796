package auth

import "errors"

var (
	ErrEmailExists        = errors.New("this email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("role must be owner or renter")
	ErrRoleNotAllowed     = errors.New("manager and admin accounts cannot self-register")
	ErrProfileNotFound    = errors.New("profile not found")
)
