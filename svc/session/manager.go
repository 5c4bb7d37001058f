package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/sessionkit/pkg/cachestore"
	"github.com/dmitrymomot/sessionkit/pkg/cookie"
	"github.com/dmitrymomot/sessionkit/pkg/jwt"
	"github.com/dmitrymomot/sessionkit/svc/records"
)

// Manager orchestrates the session lifecycle: create, refresh, update,
// workspace switch, delete, and the fan-out operations that propagate
// role/account/workspace changes to every derived session.
//
// Manager keeps no in-process session state. Every check re-reads the shared
// cache, so horizontally scaled instances cannot diverge. Multi-step
// operations are sequences of independent store round-trips: concurrent
// mutations of the same session interleave freely, with last-write-wins on
// the primary record and index consistency restored by the next update or
// delete on that session.
type Manager struct {
	cache  cachestore.Store
	loader *Loader
	issuer *TokenIssuer
	index  *IndexManager
	cfg    Config
	log    *slog.Logger
}

// New creates a Manager wired to the shared cache, the durable record source,
// and the credential services.
func New(cache cachestore.Store, source records.Source, tokens *jwt.Service, cookies *cookie.Manager, opts ...Option) *Manager {
	m := &Manager{
		cache: cache,
		cfg:   DefaultConfig(),
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.loader = NewLoader(source, m.log)
	m.issuer = NewTokenIssuer(tokens, cookies, cache, m.cfg, m.log)
	m.index = NewIndexManager(cache, m.cfg.SessionTTL, m.log)

	return m
}

// Create establishes a session for an authenticated account: a fresh
// identifier, best-effort loaded data, index membership, the primary record,
// and a newly issued credential pair. Returns the new session identifier.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, userID string) (string, error) {
	sessionID, err := generateSessionID()
	if err != nil {
		return "", err
	}

	data := m.loader.Load(ctx, userID)

	if err := m.index.Attach(ctx, sessionID, data); err != nil {
		return "", err
	}
	if err := m.writeData(ctx, sessionID, data); err != nil {
		return "", err
	}
	if err := m.issuer.IssueTokens(ctx, w, sessionID); err != nil {
		return "", err
	}

	m.log.InfoContext(ctx, "session created", "user_id", userID)
	return sessionID, nil
}

// Refresh rotates the credential pair of a live session and re-extends the
// primary record's TTL. The previous refresh credential is deleted first, so
// it can never be replayed. Refreshing a session with no primary record is a
// silent no-op: an absent session cannot be refreshed, and callers treat the
// requester as unauthenticated rather than erroring. Data is deliberately not
// reloaded; refresh extends a session, update recomputes it.
func (m *Manager) Refresh(ctx context.Context, w http.ResponseWriter, sessionID string) error {
	_, ok, err := m.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := m.cache.Delete(ctx, refreshTokenKey(sessionID)); err != nil {
		return err
	}
	if err := m.cache.Expire(ctx, sessionKey(sessionID), m.cfg.SessionTTL); err != nil {
		return err
	}
	return m.issuer.IssueTokens(ctx, w, sessionID)
}

// Update recomputes the session's data from the durable store and moves its
// index membership accordingly. A session with no primary record is a silent
// no-op. Used by the fan-out operations and by workspace switching.
func (m *Manager) Update(ctx context.Context, sessionID, userID string) error {
	old, ok, err := m.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	data := m.loader.Load(ctx, userID)

	if err := m.index.Reindex(ctx, sessionID, *old, data); err != nil {
		return err
	}
	return m.writeData(ctx, sessionID, data)
}

// SwitchWorkspace re-derives the caller's session after the account's
// current workspace changed in the durable store. With no resolvable access
// credential it is a no-op. The session is detached from its old indices
// (and its forward hashes cleared) before the reload: if the reload inside
// Update then fails, the session is temporarily indexed nowhere until the
// next successful update - a known window, accepted over leaving it indexed
// under values about to change.
func (m *Manager) SwitchWorkspace(ctx context.Context, w http.ResponseWriter, r *http.Request, userID string) error {
	sessionID, err := m.issuer.ResolveSessionID(ctx, r, CredentialAccess)
	if err != nil {
		return err
	}
	if sessionID == "" {
		return nil
	}

	old, ok, err := m.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if ok {
		if err := m.index.Detach(ctx, sessionID, *old); err != nil {
			return err
		}
	}
	if err := m.index.ClearForwardHashes(ctx, sessionID); err != nil {
		return err
	}

	return m.Update(ctx, sessionID, userID)
}

// Delete destroys a session: primary record, index membership, refresh
// credential, and both cookies. Idempotent - deleting an already-absent
// session only clears residue and cookies. Pass a nil ResponseWriter for
// server-side revocation with no client response.
func (m *Manager) Delete(ctx context.Context, w http.ResponseWriter, sessionID string) error {
	old, ok, err := m.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if ok {
		if err := m.cache.Delete(ctx, sessionKey(sessionID)); err != nil {
			return err
		}
		if err := m.index.Detach(ctx, sessionID, *old); err != nil {
			return err
		}
	}

	// Residue cleanup runs even when the record was already gone: a crashed
	// earlier delete may have left hashes or a refresh credential behind.
	if err := m.index.ClearForwardHashes(ctx, sessionID); err != nil {
		return err
	}
	if err := m.cache.Delete(ctx, refreshTokenKey(sessionID)); err != nil {
		return err
	}

	if w != nil {
		m.issuer.ClearCookies(w)
	}

	m.log.InfoContext(ctx, "session deleted")
	return nil
}

// Get reads the primary session record. ok=false means the session is dead:
// absence of the primary record is authoritative revocation regardless of
// any index or refresh-credential residue that may still exist.
func (m *Manager) Get(ctx context.Context, sessionID string) (*Data, bool, error) {
	raw, ok, err := m.cache.Get(ctx, sessionKey(sessionID))
	if err != nil || !ok {
		return nil, false, err
	}

	var data Data
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, false, errors.Join(ErrCorruptedRecord, err)
	}
	return &data, true, nil
}

// ResolveSessionID verifies the request's credential cookie of the given kind
// and returns the live session identifier it binds, or "" for no session.
func (m *Manager) ResolveSessionID(ctx context.Context, r *http.Request, kind CredentialKind) (string, error) {
	return m.issuer.ResolveSessionID(ctx, r, kind)
}

// FanOutByRole re-derives every session currently indexed under the role.
// Called after the role's permission set or base type changed.
func (m *Manager) FanOutByRole(ctx context.Context, roleID string) error {
	return m.fanOut(ctx, roleSessionsKey(roleID), m.index.OwnerOf)
}

// FanOutByUser re-derives every session owned by the account.
func (m *Manager) FanOutByUser(ctx context.Context, userID string) error {
	return m.fanOut(ctx, userSessionsKey(userID), func(ctx context.Context, _ string) (string, bool, error) {
		return userID, true, nil
	})
}

// FanOutByWorkspace re-derives every session indexed under the workspace.
// Called after workspace-level fields (e.g. subscription) changed.
func (m *Manager) FanOutByWorkspace(ctx context.Context, workspaceID string) error {
	return m.fanOut(ctx, workspaceSessionsKey(workspaceID), m.index.OwnerOf)
}

// fanOut enumerates a reverse set and updates each member session with
// bounded parallelism. Each member is processed independently: a failed
// reload or rewrite is logged and never aborts the rest, so one broken
// session cannot block a bulk permission change. Only the initial set read
// can fail the operation as a whole.
func (m *Manager) fanOut(ctx context.Context, reverseKey string, ownerOf func(context.Context, string) (string, bool, error)) error {
	members, err := m.index.SessionsOf(ctx, reverseKey)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return nil
	}

	limit := m.cfg.FanOutConcurrency
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for _, sessionID := range members {
		g.Go(func() error {
			userID, ok, err := ownerOf(ctx, sessionID)
			if err != nil || !ok {
				m.log.WarnContext(ctx, "fan-out: cannot resolve session owner", "error", err)
				return nil
			}
			if err := m.Update(ctx, sessionID, userID); err != nil {
				m.log.WarnContext(ctx, "fan-out: session update failed", "error", err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (m *Manager) writeData(ctx context.Context, sessionID string, data Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return m.cache.Set(ctx, sessionKey(sessionID), string(raw), m.cfg.SessionTTL)
}
