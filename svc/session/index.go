package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/cachestore"
)

// IndexManager maintains the reverse indices (role/user/workspace -> session
// ids) and the forward hashes (session id -> role/user/workspace id) that let
// a change to a shared entity reach every session derived from it without
// scanning all sessions.
//
// Every method is a sequence of independent single-key round-trips; none of
// them is atomic as a whole. Interleaving with concurrent lifecycle
// operations on the same session can leave stale residue, which consumers
// tolerate because the primary record alone decides whether a session is
// alive.
type IndexManager struct {
	cache cachestore.Store
	ttl   time.Duration
	log   *slog.Logger
}

// NewIndexManager creates an IndexManager. ttl is the safety-net expiry
// applied to reverse sets so leaked residue cannot outlive the sessions that
// produced it by more than one session lifetime.
func NewIndexManager(cache cachestore.Store, ttl time.Duration, log *slog.Logger) *IndexManager {
	if log == nil {
		log = slog.Default()
	}
	return &IndexManager{cache: cache, ttl: ttl, log: log}
}

// Attach writes the three forward-hash entries and adds the session to the
// three reverse sets named by data. Empty-string role/workspace ids index
// into the degenerate "" buckets, which is accepted: fan-out is only ever
// triggered by a concrete identifier, so those buckets are never enumerated.
func (im *IndexManager) Attach(ctx context.Context, sessionID string, data Data) error {
	forward := []struct{ hash, value string }{
		{keyForwardRole, data.RoleID},
		{keyForwardUser, data.UserID},
		{keyForwardWorkspace, data.WorkspaceID},
	}
	for _, f := range forward {
		if err := im.cache.HashSet(ctx, f.hash, sessionID, f.value); err != nil {
			return err
		}
	}

	for _, key := range reverseKeys(data) {
		if err := im.cache.SetAdd(ctx, key, sessionID); err != nil {
			return err
		}
		if err := im.cache.Expire(ctx, key, im.ttl); err != nil {
			return err
		}
	}
	return nil
}

// Detach removes the session from the three reverse sets named by data and
// deletes its forward-hash entries.
func (im *IndexManager) Detach(ctx context.Context, sessionID string, data Data) error {
	for _, key := range reverseKeys(data) {
		if err := im.cache.SetRemove(ctx, key, sessionID); err != nil {
			return err
		}
	}
	return im.ClearForwardHashes(ctx, sessionID)
}

// Reindex moves the session from the indices named by old to those named by
// current. It is Detach followed by Attach, not a transaction: a reader
// interleaving between the two phases can observe the session in neither
// index. The window closes on the next successful Reindex or Detach.
func (im *IndexManager) Reindex(ctx context.Context, sessionID string, old, current Data) error {
	if err := im.Detach(ctx, sessionID, old); err != nil {
		return err
	}
	return im.Attach(ctx, sessionID, current)
}

// ClearForwardHashes drops the session's forward-hash entries regardless of
// what they point at. Used as the defensive arm of delete and workspace
// switch, where the cached record may already disagree with the hashes.
func (im *IndexManager) ClearForwardHashes(ctx context.Context, sessionID string) error {
	return errors.Join(
		im.cache.HashDelete(ctx, keyForwardRole, sessionID),
		im.cache.HashDelete(ctx, keyForwardUser, sessionID),
		im.cache.HashDelete(ctx, keyForwardWorkspace, sessionID),
	)
}

// OwnerOf resolves the owning account of a session through the session:user
// forward hash. ok=false when the hash has no entry for the session.
func (im *IndexManager) OwnerOf(ctx context.Context, sessionID string) (string, bool, error) {
	return im.cache.HashGet(ctx, keyForwardUser, sessionID)
}

// SessionsOf returns the members of the given reverse set. The order is
// unspecified.
func (im *IndexManager) SessionsOf(ctx context.Context, reverseKey string) ([]string, error) {
	return im.cache.SetMembers(ctx, reverseKey)
}

func reverseKeys(data Data) [3]string {
	return [3]string{
		roleSessionsKey(data.RoleID),
		userSessionsKey(data.UserID),
		workspaceSessionsKey(data.WorkspaceID),
	}
}
