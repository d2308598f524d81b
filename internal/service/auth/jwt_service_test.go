package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-thats-long-enough"

func newTestJWTService(t *testing.T, lifetime time.Duration) *hmacJWTService {
	t.Helper()
	svc, err := NewJWTService(testSecret, lifetime)
	require.NoError(t, err)
	return svc.(*hmacJWTService)
}

func TestNewJWTService_Validation(t *testing.T) {
	_, err := NewJWTService("", time.Hour)
	assert.Error(t, err, "empty secret must be rejected")

	_, err = NewJWTService(testSecret, 0)
	assert.Error(t, err, "zero lifetime must be rejected")
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t, 24*time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(context.Background(), "steven@example.com", userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "steven@example.com", claims.Email)
	assert.Equal(t, userID, claims.UserID)
	assert.NotEmpty(t, claims.TokenID)
	assert.WithinDuration(t, claims.IssuedAt.Add(24*time.Hour), claims.ExpiresAt, time.Second)
}

func TestJWTService_GenerateToken_Validation(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	_, err := svc.GenerateToken(context.Background(), "", uuid.New())
	assert.Error(t, err)

	_, err = svc.GenerateToken(context.Background(), "steven@example.com", uuid.Nil)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Failures(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewJWTService("a-completely-different-secret-key", time.Hour)
		require.NoError(t, err)
		token, err := other.GenerateToken(context.Background(), "steven@example.com", uuid.New())
		require.NoError(t, err)

		_, err = svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		issued := time.Now().Add(-2 * time.Hour)
		svc.timeFn = func() time.Time { return issued }
		token, err := svc.GenerateToken(context.Background(), "steven@example.com", uuid.New())
		require.NoError(t, err)

		svc.timeFn = time.Now
		_, err = svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
