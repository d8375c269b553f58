// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"brokerage/config"
	"brokerage/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface
// using the JWT standard.
type jwtService struct {
	secret     string        // Secret key for signing session tokens.
	sessionTTL time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:     cfg.SecretKey.Access,
		sessionTTL: 24 * time.Hour,
	}, nil
}

// GenerateToken creates a signed session token for a user.
func (s *jwtService) GenerateToken(userID uuid.UUID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, jwt.ErrTokenInvalidSubject
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}

	role, _ := mapClaims["role"].(string)

	return &service.Claims{UserID: userID, Role: role}, nil
}
