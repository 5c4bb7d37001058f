package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/sessionkit/svc/records"
)

// Loader reconstructs authoritative session data for an account from the
// durable record store: settings -> membership -> workspace -> role.
//
// Load is best-effort by design. Missing records and transport failures both
// degrade to empty fields instead of failing the caller; a session with no
// workspace or role is a legitimate state the rest of the kit must accept.
type Loader struct {
	source records.Source
	log    *slog.Logger
}

// NewLoader creates a Loader over the given record source.
func NewLoader(source records.Source, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{source: source, log: log}
}

// Load returns the session data for userID. It never returns an error:
// every lookup failure is logged and absorbed, and the result is a populated
// or degenerate Data with at least UserID set.
func (l *Loader) Load(ctx context.Context, userID string) Data {
	data := Data{
		UserID:      userID,
		Permissions: []string{},
	}

	settings := lookup(ctx, l, "user settings", func() (*records.UserSettings, error) {
		return l.source.UserSettings(ctx, userID)
	})
	if settings == nil || settings.CurrentWorkspaceID == "" {
		return data
	}
	workspaceID := settings.CurrentWorkspaceID

	member := lookup(ctx, l, "workspace member", func() (*records.WorkspaceMember, error) {
		return l.source.WorkspaceMember(ctx, userID, workspaceID)
	})
	workspace := lookup(ctx, l, "workspace", func() (*records.Workspace, error) {
		return l.source.Workspace(ctx, workspaceID)
	})

	// An active workspace requires both the workspace document and the
	// caller's membership in it. Anything less leaves the session inert.
	if member != nil && workspace != nil {
		data.WorkspaceID = workspace.ID
		data.SubscriptionStatus = workspace.SubscriptionStatus
		data.SubscriptionPlan = workspace.SubscriptionPlan
	}

	if member != nil && member.RoleID != "" {
		role := lookup(ctx, l, "role", func() (*records.Role, error) {
			return l.source.Role(ctx, member.RoleID)
		})
		if role != nil {
			data.RoleID = role.ID
			data.BaseType = role.BaseType
			if len(role.Permissions) > 0 {
				data.Permissions = role.Permissions
			}
		}
	}

	return data
}

// lookup runs a single record fetch and absorbs its failure modes: not-found
// is expected partial data (debug), a transport error is noteworthy (warn),
// and both yield nil.
func lookup[T any](ctx context.Context, l *Loader, kind string, fetch func() (*T, error)) *T {
	rec, err := fetch()
	switch {
	case err == nil:
		return rec
	case errors.Is(err, records.ErrNotFound):
		l.log.DebugContext(ctx, "session load: record not found", "record", kind)
	default:
		l.log.WarnContext(ctx, "session load: lookup failed", "record", kind, "error", err)
	}
	return nil
}
