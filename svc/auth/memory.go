package auth

import (
	"context"
	"sync"
)

// MemoryCredentialStorage implements CredentialStorage with an in-process map,
// for tests and local tooling.
type MemoryCredentialStorage struct {
	mu    sync.RWMutex
	creds map[string]Credential // keyed by email
}

func NewMemoryCredentialStorage() *MemoryCredentialStorage {
	return &MemoryCredentialStorage{creds: make(map[string]Credential)}
}

// PutCredential stores or replaces the credential for its email.
func (s *MemoryCredentialStorage) PutCredential(cred Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds[cred.Email] = cred
}

func (s *MemoryCredentialStorage) CredentialByEmail(_ context.Context, email string) (*Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cred, ok := s.creds[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &cred, nil
}
