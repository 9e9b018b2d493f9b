package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrMissingEmail indicates a token payload without an email claim
	ErrMissingEmail = errors.New("token payload must include an email")

	// ErrMissingIdentity indicates an owner-scoped operation ran without a verified identity
	ErrMissingIdentity = errors.New("verified identity is missing")

	// ErrForbidden indicates the verified identity does not own the resource
	ErrForbidden = errors.New("forbidden access")
)
