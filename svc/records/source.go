package records

import "context"

// Source provides read-only lookups into the durable record store. Every
// method distinguishes absence (ErrNotFound) from a transport failure: callers
// like the session loader treat the former as empty data and only log the
// latter.
type Source interface {
	// UserSettings returns the settings document for the given account.
	UserSettings(ctx context.Context, userID string) (*UserSettings, error)

	// WorkspaceMember returns the membership record for (account, workspace).
	WorkspaceMember(ctx context.Context, userID, workspaceID string) (*WorkspaceMember, error)

	// Workspace returns the workspace document by id.
	Workspace(ctx context.Context, workspaceID string) (*Workspace, error)

	// Role returns the role document by id.
	Role(ctx context.Context, roleID string) (*Role, error)
}
