package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken signs payload as the token's claims. The payload must carry
	// an "email" string; iat, exp and jti are always set by the service.
	GenerateToken(ctx context.Context, payload map[string]any) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns the claims if the token is valid,
	// or an error if validation fails (expired, invalid signature, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified identity extracted from a token.
type Claims struct {
	// Email identifies the caller for every ownership check.
	Email string `json:"email"`

	// Payload holds every claim of the token, registered ones included.
	Payload map[string]any `json:"-"`

	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
