package records

import (
	"context"
	"sync"
)

// MemorySource is an in-memory Source for tests and local development.
// Zero value is not usable; create with NewMemorySource.
type MemorySource struct {
	mu         sync.RWMutex
	settings   map[string]UserSettings
	members    map[string]WorkspaceMember // keyed userID + "\x00" + workspaceID
	workspaces map[string]Workspace
	roles      map[string]Role
}

// NewMemorySource creates an empty in-memory record source.
func NewMemorySource() *MemorySource {
	return &MemorySource{
		settings:   make(map[string]UserSettings),
		members:    make(map[string]WorkspaceMember),
		workspaces: make(map[string]Workspace),
		roles:      make(map[string]Role),
	}
}

func memberKey(userID, workspaceID string) string {
	return userID + "\x00" + workspaceID
}

// PutUserSettings stores or replaces the settings record for an account.
func (s *MemorySource) PutUserSettings(rec UserSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[rec.UserID] = rec
}

// PutWorkspaceMember stores or replaces a membership record.
func (s *MemorySource) PutWorkspaceMember(rec WorkspaceMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[memberKey(rec.UserID, rec.WorkspaceID)] = rec
}

// PutWorkspace stores or replaces a workspace record.
func (s *MemorySource) PutWorkspace(rec Workspace) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workspaces[rec.ID] = rec
}

// PutRole stores or replaces a role record.
func (s *MemorySource) PutRole(rec Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[rec.ID] = rec
}

// SetCurrentWorkspace upserts the account's workspace selection, mirroring
// the mongo implementation.
func (s *MemorySource) SetCurrentWorkspace(_ context.Context, userID, workspaceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.settings[userID]
	rec.UserID = userID
	rec.CurrentWorkspaceID = workspaceID
	s.settings[userID] = rec
	return nil
}

// RemoveWorkspaceMember drops a membership record, if present.
func (s *MemorySource) RemoveWorkspaceMember(userID, workspaceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.members, memberKey(userID, workspaceID))
}

func (s *MemorySource) UserSettings(ctx context.Context, userID string) (*UserSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.settings[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (s *MemorySource) WorkspaceMember(ctx context.Context, userID, workspaceID string) (*WorkspaceMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.members[memberKey(userID, workspaceID)]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (s *MemorySource) Workspace(ctx context.Context, workspaceID string) (*Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.workspaces[workspaceID]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (s *MemorySource) Role(ctx context.Context, roleID string) (*Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.roles[roleID]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}
