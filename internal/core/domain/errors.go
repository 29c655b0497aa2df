package domain

import "errors"

// Request-scoped failures the API maps to deterministic HTTP statuses.
var (
	ErrMissingFields = errors.New("missing required fields")
	ErrEmailExists   = errors.New("email already registered")
	// ErrInvalidCredentials covers both "unknown email" and "wrong
	// password" so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserNotFound       = errors.New("user not found")
)
