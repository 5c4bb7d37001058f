package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/svc/auth"
)

func TestPasswordAuthenticator_Authenticate(t *testing.T) {
	ctx := context.Background()

	hash, err := auth.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	storage := auth.NewMemoryCredentialStorage()
	storage.PutCredential(auth.Credential{
		UserID:       "u1",
		Email:        "u1@example.com",
		PasswordHash: hash,
	})

	authn := auth.NewPasswordAuthenticator(storage, nil)

	t.Run("valid pair resolves the account", func(t *testing.T) {
		userID, err := authn.Authenticate(ctx, "u1@example.com", "correct horse battery staple")
		require.NoError(t, err)
		assert.Equal(t, "u1", userID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := authn.Authenticate(ctx, "u1@example.com", "nope")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		_, err := authn.Authenticate(ctx, "ghost@example.com", "whatever")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

type brokenStorage struct{}

func (brokenStorage) CredentialByEmail(context.Context, string) (*auth.Credential, error) {
	return nil, assert.AnError
}

func TestPasswordAuthenticator_StorageFailure(t *testing.T) {
	authn := auth.NewPasswordAuthenticator(brokenStorage{}, nil)

	_, err := authn.Authenticate(context.Background(), "u1@example.com", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials, "transport failures must not look like bad credentials")
}
