package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenIssuer is the iss claim stamped on every token this service
// signs; validation rejects tokens issued elsewhere.
const tokenIssuer = "bankcore"

// tokenClaims is the wire shape of the JWT payload. The registered
// subject carries the email; "id" carries the user identifier.
type tokenClaims struct {
	UserID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

// hmacJWTService implements JWTService using HMAC-SHA256 signing.
type hmacJWTService struct {
	secret        []byte
	tokenLifetime time.Duration
	timeFn        func() time.Time
}

// NewJWTService creates a JWTService signing with the given secret.
// Tokens expire after tokenLifetime.
func NewJWTService(secret string, tokenLifetime time.Duration) (JWTService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	if tokenLifetime <= 0 {
		return nil, errors.New("token lifetime must be positive")
	}
	return &hmacJWTService{
		secret:        []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFn:        time.Now,
	}, nil
}

func (s *hmacJWTService) GenerateToken(ctx context.Context, email string, userID uuid.UUID) (string, error) {
	if email == "" {
		return "", errors.New("email must not be empty")
	}
	if userID == uuid.Nil {
		return "", errors.New("user ID must not be empty")
	}

	now := s.timeFn()
	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *hmacJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.timeFn),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, ErrTokenNotYetValid
		default:
			return nil, ErrInvalidToken
		}
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	out := &Claims{
		UserID:  claims.UserID,
		Email:   claims.Subject,
		TokenID: claims.ID,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
