package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Claims represents the payload carried by an issued token. The subject
// is the user's email; the user's identifier travels in a custom "id"
// claim so API handlers can resolve the caller without a directory
// lookup.
type Claims struct {
	UserID    uuid.UUID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
	TokenID   string
}

// JWTService defines the interface for generating and validating
// authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed token for the given user. The email
	// becomes the token subject and the user ID is embedded as a custom
	// claim.
	GenerateToken(ctx context.Context, email string, userID uuid.UUID) (string, error)

	// ValidateToken parses and verifies a token string, returning the
	// embedded claims if the token is valid. Returns ErrExpiredToken,
	// ErrTokenNotYetValid or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
