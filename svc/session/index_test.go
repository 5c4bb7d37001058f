package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/cachestore"
	"github.com/dmitrymomot/sessionkit/svc/session"
)

func TestIndexManager_AttachDetach(t *testing.T) {
	ctx := context.Background()
	store := cachestore.NewMemoryStore()
	index := session.NewIndexManager(store, time.Hour, nil)

	data := session.Data{WorkspaceID: "w1", UserID: "u1", RoleID: "r1"}

	t.Run("attach indexes all three dimensions", func(t *testing.T) {
		require.NoError(t, index.Attach(ctx, "s1", data))

		for _, key := range []string{"role:r1:sessions", "user:u1:sessions", "workspace:w1:sessions"} {
			members, err := store.SetMembers(ctx, key)
			require.NoError(t, err)
			assert.Contains(t, members, "s1", "missing from %s", key)
		}

		role, ok, err := store.HashGet(ctx, "session:role", "s1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "r1", role)

		owner, ok, err := index.OwnerOf(ctx, "s1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "u1", owner)
	})

	t.Run("detach removes everything attach wrote", func(t *testing.T) {
		require.NoError(t, index.Detach(ctx, "s1", data))

		for _, key := range []string{"role:r1:sessions", "user:u1:sessions", "workspace:w1:sessions"} {
			members, err := store.SetMembers(ctx, key)
			require.NoError(t, err)
			assert.NotContains(t, members, "s1")
		}

		_, ok, err := index.OwnerOf(ctx, "s1")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestIndexManager_Reindex(t *testing.T) {
	ctx := context.Background()
	store := cachestore.NewMemoryStore()
	index := session.NewIndexManager(store, time.Hour, nil)

	old := session.Data{WorkspaceID: "w1", UserID: "u1", RoleID: "r1"}
	current := session.Data{WorkspaceID: "w2", UserID: "u1", RoleID: "r2"}

	require.NoError(t, index.Attach(ctx, "s1", old))
	require.NoError(t, index.Reindex(ctx, "s1", old, current))

	t.Run("old memberships are gone", func(t *testing.T) {
		for _, key := range []string{"role:r1:sessions", "workspace:w1:sessions"} {
			members, err := store.SetMembers(ctx, key)
			require.NoError(t, err)
			assert.NotContains(t, members, "s1")
		}
	})

	t.Run("new memberships and hashes are in place", func(t *testing.T) {
		for _, key := range []string{"role:r2:sessions", "user:u1:sessions", "workspace:w2:sessions"} {
			members, err := store.SetMembers(ctx, key)
			require.NoError(t, err)
			assert.Contains(t, members, "s1")
		}

		ws, ok, err := store.HashGet(ctx, "session:workspace", "s1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "w2", ws)
	})
}

func TestIndexManager_EmptyBuckets(t *testing.T) {
	ctx := context.Background()
	store := cachestore.NewMemoryStore()
	index := session.NewIndexManager(store, time.Hour, nil)

	// No workspace, no role: the session lands in the degenerate "" buckets.
	data := session.Data{UserID: "u1"}
	require.NoError(t, index.Attach(ctx, "s1", data))

	members, err := store.SetMembers(ctx, "role::sessions")
	require.NoError(t, err)
	assert.Contains(t, members, "s1")

	members, err = store.SetMembers(ctx, "workspace::sessions")
	require.NoError(t, err)
	assert.Contains(t, members, "s1")
}

func TestIndexManager_ClearForwardHashes(t *testing.T) {
	ctx := context.Background()
	store := cachestore.NewMemoryStore()
	index := session.NewIndexManager(store, time.Hour, nil)

	require.NoError(t, index.Attach(ctx, "s1", session.Data{WorkspaceID: "w1", UserID: "u1", RoleID: "r1"}))
	require.NoError(t, index.ClearForwardHashes(ctx, "s1"))

	for _, hash := range []string{"session:role", "session:user", "session:workspace"} {
		_, ok, err := store.HashGet(ctx, hash, "s1")
		require.NoError(t, err)
		assert.False(t, ok, "hash %s should be cleared", hash)
	}

	// Reverse-set membership is untouched; only the hashes are dropped.
	members, err := store.SetMembers(ctx, "role:r1:sessions")
	require.NoError(t, err)
	assert.Contains(t, members, "s1")
}
