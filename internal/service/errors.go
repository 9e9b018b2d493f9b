package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped with context using %w
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrUserExists indicates a registration for an email that is already registered.
	// API layer answers with the "user already exists" body rather than an error status.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidPagination indicates a negative page or size, or a page
	// whose offset page*size does not fit in an int64.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidPagination = errors.New("invalid page or size")
)
