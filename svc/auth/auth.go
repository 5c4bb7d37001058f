package auth

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Credential is the stored login material for an account.
type Credential struct {
	UserID       string `bson:"_id" json:"user_id"`
	Email        string `bson:"email" json:"email"`
	PasswordHash []byte `bson:"password_hash" json:"-"`
}

// CredentialStorage looks up login material. Implementations return
// ErrUserNotFound for an unknown email.
type CredentialStorage interface {
	CredentialByEmail(ctx context.Context, email string) (*Credential, error)
}

// PasswordAuthenticator verifies email/password pairs against bcrypt hashes.
// An unknown email and a wrong password are indistinguishable to the caller:
// both come back as ErrInvalidCredentials.
type PasswordAuthenticator struct {
	storage CredentialStorage
	log     *slog.Logger
}

func NewPasswordAuthenticator(storage CredentialStorage, log *slog.Logger) *PasswordAuthenticator {
	if log == nil {
		log = slog.Default()
	}
	return &PasswordAuthenticator{storage: storage, log: log}
}

// Authenticate returns the account identifier for a valid credential pair.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, email, password string) (string, error) {
	cred, err := a.storage.CredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Burn comparable time so unknown emails are not cheaper to probe.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(cred.PasswordHash, []byte(password)); err != nil {
		a.log.DebugContext(ctx, "password mismatch", "email", email)
		return "", ErrInvalidCredentials
	}
	return cred.UserID, nil
}

// HashPassword produces a bcrypt hash suitable for Credential.PasswordHash.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// dummyHash is a valid bcrypt hash of an unguessable value, used to equalize
// timing between unknown-email and wrong-password failures.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")
