package auth

import (
	"context"
	"time"

	"github.com/openblog/api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given user.
	// The token subject is the username and the user's role names are
	// embedded as a claim. Returns the token string or an error if token
	// generation fails.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns the claims if the token is valid, or one of the
	// package sentinel errors describing why validation failed (malformed,
	// unsupported algorithm, expired, bad signature, empty claims).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the validated claims extracted from a token.
type Claims struct {
	// Username is the token subject: the identifier the principal is
	// loaded by.
	Username string `json:"sub,omitempty"`

	// Roles holds the qualified role names granted to the user when the
	// token was issued.
	Roles []string `json:"roles,omitempty"`

	// Standard registered JWT claims
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
