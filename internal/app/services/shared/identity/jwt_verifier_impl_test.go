package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTVerifier(t *testing.T) {
	verifier := NewJWTVerifier("test-secret", zap.NewNop())

	t.Run("No Secret Disables Verification", func(t *testing.T) {
		assert.Nil(t, NewJWTVerifier("", zap.NewNop()))
	})

	t.Run("Valid Token", func(t *testing.T) {
		token := signToken(t, "test-secret", jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		assert.NoError(t, verifier.Verify(context.Background(), token))
	})

	t.Run("Expired Token", func(t *testing.T) {
		token := signToken(t, "test-secret", jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		})
		assert.Error(t, verifier.Verify(context.Background(), token))
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.RegisteredClaims{Subject: "u1"})
		assert.Error(t, verifier.Verify(context.Background(), token))
	})

	t.Run("Missing Subject", func(t *testing.T) {
		token := signToken(t, "test-secret", jwt.RegisteredClaims{})
		assert.Error(t, verifier.Verify(context.Background(), token))
	})

	t.Run("Garbage", func(t *testing.T) {
		assert.Error(t, verifier.Verify(context.Background(), "not-a-jwt"))
	})
}
