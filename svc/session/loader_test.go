package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sessionkit/svc/records"
	"github.com/dmitrymomot/sessionkit/svc/session"
)

// brokenSource simulates a record store that is unreachable.
type brokenSource struct{}

func (brokenSource) UserSettings(context.Context, string) (*records.UserSettings, error) {
	return nil, assert.AnError
}

func (brokenSource) WorkspaceMember(context.Context, string, string) (*records.WorkspaceMember, error) {
	return nil, assert.AnError
}

func (brokenSource) Workspace(context.Context, string) (*records.Workspace, error) {
	return nil, assert.AnError
}

func (brokenSource) Role(context.Context, string) (*records.Role, error) {
	return nil, assert.AnError
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("full chain resolves", func(t *testing.T) {
		src := records.NewMemorySource()
		src.PutUserSettings(records.UserSettings{UserID: "acct1", CurrentWorkspaceID: "w1"})
		src.PutWorkspaceMember(records.WorkspaceMember{UserID: "acct1", WorkspaceID: "w1", RoleID: "r1"})
		src.PutWorkspace(records.Workspace{ID: "w1", SubscriptionStatus: "active", SubscriptionPlan: "pro"})
		src.PutRole(records.Role{ID: "r1", BaseType: "member", Permissions: []string{"read", "write"}})

		data := session.NewLoader(src, nil).Load(ctx, "acct1")

		assert.Equal(t, session.Data{
			WorkspaceID:        "w1",
			UserID:             "acct1",
			RoleID:             "r1",
			Permissions:        []string{"read", "write"},
			BaseType:           "member",
			SubscriptionStatus: "active",
			SubscriptionPlan:   "pro",
		}, data)
	})

	t.Run("unknown account degrades to inert data", func(t *testing.T) {
		data := session.NewLoader(records.NewMemorySource(), nil).Load(ctx, "ghost")

		assert.Equal(t, "ghost", data.UserID)
		assert.Empty(t, data.WorkspaceID)
		assert.Empty(t, data.RoleID)
		assert.Empty(t, data.Permissions)
	})

	t.Run("no current workspace selected", func(t *testing.T) {
		src := records.NewMemorySource()
		src.PutUserSettings(records.UserSettings{UserID: "acct1"})

		data := session.NewLoader(src, nil).Load(ctx, "acct1")

		assert.Empty(t, data.WorkspaceID)
		assert.Empty(t, data.RoleID)
	})

	t.Run("workspace without membership stays inert", func(t *testing.T) {
		src := records.NewMemorySource()
		src.PutUserSettings(records.UserSettings{UserID: "acct1", CurrentWorkspaceID: "w1"})
		src.PutWorkspace(records.Workspace{ID: "w1", SubscriptionPlan: "pro"})

		data := session.NewLoader(src, nil).Load(ctx, "acct1")

		assert.Empty(t, data.WorkspaceID)
		assert.Empty(t, data.SubscriptionPlan)
	})

	t.Run("membership without workspace document stays inert but keeps role", func(t *testing.T) {
		src := records.NewMemorySource()
		src.PutUserSettings(records.UserSettings{UserID: "acct1", CurrentWorkspaceID: "w1"})
		src.PutWorkspaceMember(records.WorkspaceMember{UserID: "acct1", WorkspaceID: "w1", RoleID: "r1"})
		src.PutRole(records.Role{ID: "r1", Permissions: []string{"read"}})

		data := session.NewLoader(src, nil).Load(ctx, "acct1")

		assert.Empty(t, data.WorkspaceID)
		assert.Equal(t, "r1", data.RoleID)
		assert.Equal(t, []string{"read"}, data.Permissions)
	})

	t.Run("missing role record leaves role empty", func(t *testing.T) {
		src := records.NewMemorySource()
		src.PutUserSettings(records.UserSettings{UserID: "acct1", CurrentWorkspaceID: "w1"})
		src.PutWorkspaceMember(records.WorkspaceMember{UserID: "acct1", WorkspaceID: "w1", RoleID: "r-gone"})
		src.PutWorkspace(records.Workspace{ID: "w1"})

		data := session.NewLoader(src, nil).Load(ctx, "acct1")

		assert.Equal(t, "w1", data.WorkspaceID)
		assert.Empty(t, data.RoleID)
		assert.Empty(t, data.Permissions)
	})

	t.Run("transport failure is absorbed, never propagated", func(t *testing.T) {
		data := session.NewLoader(brokenSource{}, nil).Load(ctx, "acct1")

		assert.Equal(t, "acct1", data.UserID)
		assert.Empty(t, data.WorkspaceID)
		assert.Empty(t, data.RoleID)
		assert.Empty(t, data.Permissions)
	})
}
