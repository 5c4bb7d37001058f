package session

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sessionkit/pkg/cachestore"
	"github.com/dmitrymomot/sessionkit/pkg/cookie"
	"github.com/dmitrymomot/sessionkit/pkg/jwt"
)

// CredentialKind names one of the two credential cookies.
type CredentialKind string

const (
	// CredentialAccess is the short-lived credential sent on every request.
	CredentialAccess CredentialKind = "access"
	// CredentialRefresh is the long-lived credential scoped to the renewal
	// endpoint.
	CredentialRefresh CredentialKind = "refresh"
)

// TokenIssuer mints the signed access/refresh credential pair for a session
// and arranges their cookie transport. The credentials bind only the session
// identifier - permissions and workspace state always come from the cached
// record, never from token claims.
type TokenIssuer struct {
	tokens  *jwt.Service
	cookies *cookie.Manager
	cache   cachestore.Store
	cfg     Config
	log     *slog.Logger
}

// NewTokenIssuer creates a TokenIssuer.
func NewTokenIssuer(tokens *jwt.Service, cookies *cookie.Manager, cache cachestore.Store, cfg Config, log *slog.Logger) *TokenIssuer {
	if log == nil {
		log = slog.Default()
	}
	return &TokenIssuer{tokens: tokens, cookies: cookies, cache: cache, cfg: cfg, log: log}
}

// IssueTokens mints a fresh access/refresh pair bound to sessionID, records
// the refresh credential value (with TTL) as the session's single valid
// refresh credential, and sets both cookies. The refresh cookie is scoped to
// the renewal path so browsers never send it anywhere else.
func (i *TokenIssuer) IssueTokens(ctx context.Context, w http.ResponseWriter, sessionID string) error {
	access, err := i.tokens.Generate(sessionID, i.cfg.AccessTokenTTL)
	if err != nil {
		return err
	}
	refresh, err := i.tokens.Generate(sessionID, i.cfg.RefreshTokenTTL)
	if err != nil {
		return err
	}

	if err := i.cache.Set(ctx, refreshTokenKey(sessionID), refresh, i.cfg.RefreshTokenTTL); err != nil {
		return err
	}

	secure := i.cfg.secureCookies()
	if err := i.cookies.SetSigned(w, i.cfg.AccessCookieName, access,
		cookie.WithPath("/"),
		cookie.WithMaxAge(int(i.cfg.AccessTokenTTL.Seconds())),
		cookie.WithSecure(secure),
	); err != nil {
		return err
	}
	return i.cookies.SetSigned(w, i.cfg.RefreshCookieName, refresh,
		cookie.WithPath(i.cfg.RenewalPath),
		cookie.WithMaxAge(int(i.cfg.RefreshTokenTTL.Seconds())),
		cookie.WithSecure(secure),
	)
}

// ResolveSessionID verifies the named credential cookie and returns the
// session identifier it binds. An absent cookie, a bad signature, an expired
// or tampered token, and (for the refresh kind) a revoked or rotated refresh
// credential all resolve to ("", nil) - "no session" is a state, not an
// error. A non-nil error means only that the cache could not be consulted.
func (i *TokenIssuer) ResolveSessionID(ctx context.Context, r *http.Request, kind CredentialKind) (string, error) {
	name := i.cfg.AccessCookieName
	if kind == CredentialRefresh {
		name = i.cfg.RefreshCookieName
	}

	raw, err := i.cookies.GetSigned(r, name)
	if err != nil {
		return "", nil
	}

	sessionID, err := i.tokens.Subject(raw)
	if err != nil {
		i.log.DebugContext(ctx, "credential rejected", "kind", kind, "error", err)
		return "", nil
	}

	if kind == CredentialRefresh {
		// One-time use: only the most recently issued refresh credential is
		// valid. Comparing values (not mere key existence) makes a replayed
		// credential fail closed after rotation, and a deleted key covers
		// revocation even while the JWT itself is still within its lifetime.
		stored, ok, err := i.cache.Get(ctx, refreshTokenKey(sessionID))
		if err != nil {
			return "", err
		}
		if !ok || subtle.ConstantTimeCompare([]byte(stored), []byte(raw)) != 1 {
			return "", nil
		}
	}

	return sessionID, nil
}

// ClearCookies expires both credential cookies at the paths they were set on.
func (i *TokenIssuer) ClearCookies(w http.ResponseWriter) {
	i.cookies.Delete(w, i.cfg.AccessCookieName, cookie.WithPath("/"))
	i.cookies.Delete(w, i.cfg.RefreshCookieName, cookie.WithPath(i.cfg.RenewalPath))
}
