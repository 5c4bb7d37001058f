package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/jwt"
)

const testKey = "test-signing-key-that-is-long-enough"

func TestNew(t *testing.T) {
	t.Run("rejects empty key", func(t *testing.T) {
		_, err := jwt.New(nil)
		assert.ErrorIs(t, err, jwt.ErrMissingSigningKey)

		_, err = jwt.NewFromString("")
		assert.ErrorIs(t, err, jwt.ErrMissingSigningKey)
	})

	t.Run("accepts key", func(t *testing.T) {
		svc, err := jwt.NewFromString(testKey)
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestService_GenerateAndSubject(t *testing.T) {
	svc, err := jwt.NewFromString(testKey)
	require.NoError(t, err)

	t.Run("round-trip", func(t *testing.T) {
		token, err := svc.Generate("sess-1", time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		subject, err := svc.Subject(token)
		require.NoError(t, err)
		assert.Equal(t, "sess-1", subject)
	})

	t.Run("tokens for same subject are distinct", func(t *testing.T) {
		a, err := svc.Generate("sess-1", time.Hour)
		require.NoError(t, err)
		b, err := svc.Generate("sess-1", time.Hour)
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})

	t.Run("rejects empty subject", func(t *testing.T) {
		_, err := svc.Generate("", time.Hour)
		assert.ErrorIs(t, err, jwt.ErrMissingClaims)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		token, err := svc.Generate("sess-1", -time.Minute)
		require.NoError(t, err)

		_, err = svc.Subject(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("rejects tampered token", func(t *testing.T) {
		token, err := svc.Generate("sess-1", time.Hour)
		require.NoError(t, err)

		_, err = svc.Subject(token + "x")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("rejects token signed with another key", func(t *testing.T) {
		other, err := jwt.NewFromString("another-signing-key-also-long-enough")
		require.NoError(t, err)

		token, err := other.Generate("sess-1", time.Hour)
		require.NoError(t, err)

		_, err = svc.Subject(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.Subject("definitely.not.a-jwt")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
