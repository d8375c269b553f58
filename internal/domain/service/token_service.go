package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID uuid.UUID
	Role   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session
// tokens. This abstracts the token format from the use cases and middleware.
type TokenService interface {
	// GenerateToken creates a signed session token for a user.
	GenerateToken(userID uuid.UUID, role string) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
