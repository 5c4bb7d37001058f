package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sessionkit/pkg/cachestore"
	authsvc "github.com/dmitrymomot/sessionkit/svc/auth"
	"github.com/dmitrymomot/sessionkit/svc/session"
)

// Authenticator verifies account credentials. Implementations return the
// account identifier on success and authsvc.ErrInvalidCredentials on any
// mismatch, including an unknown email.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
}

// SettingsWriter persists the account's current-workspace selection before the
// session is re-derived from it.
type SettingsWriter interface {
	SetCurrentWorkspace(ctx context.Context, userID, workspaceID string) error
}

// Service exposes the session lifecycle over HTTP: login, renewal, logout,
// and workspace switching.
type Service struct {
	sessions *session.Manager
	authn    Authenticator
	settings SettingsWriter
	log      *slog.Logger
}

func NewService(sessions *session.Manager, authn Authenticator, settings SettingsWriter, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		sessions: sessions,
		authn:    authn,
		settings: settings,
		log:      log,
	}
}

// Handle returns the module router. Mount it at the application root: the
// refresh cookie is scoped to the /session path, so the renewal route must
// live there.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/", authModule.Handle())
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/login", s.login)
	r.Post("/session", s.refresh)
	r.Post("/logout", s.logout)
	r.Post("/workspace/switch", s.switchWorkspace)

	return r
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Service) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	userID, err := s.authn.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		s.respondFailure(w, r, err)
		return
	}

	if _, err := s.sessions.Create(r.Context(), w, userID); err != nil {
		s.respondFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) refresh(w http.ResponseWriter, r *http.Request) {
	sessionID, err := s.sessions.ResolveSessionID(r.Context(), r, session.CredentialRefresh)
	if err != nil {
		s.respondFailure(w, r, err)
		return
	}
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no renewable session")
		return
	}

	if err := s.sessions.Refresh(r.Context(), w, sessionID); err != nil {
		s.respondFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// logout succeeds even without a resolvable session: the client's cookies are
// cleared either way, and revocation of a dead session is a no-op.
func (s *Service) logout(w http.ResponseWriter, r *http.Request) {
	sessionID, err := s.sessions.ResolveSessionID(r.Context(), r, session.CredentialAccess)
	if err != nil {
		s.respondFailure(w, r, err)
		return
	}

	if err := s.sessions.Delete(r.Context(), w, sessionID); err != nil {
		s.respondFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type switchWorkspaceRequest struct {
	WorkspaceID string `json:"workspaceId"`
}

func (s *Service) switchWorkspace(w http.ResponseWriter, r *http.Request) {
	sessionID, err := s.sessions.ResolveSessionID(r.Context(), r, session.CredentialAccess)
	if err != nil {
		s.respondFailure(w, r, err)
		return
	}
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	data, ok, err := s.sessions.Get(r.Context(), sessionID)
	if err != nil {
		s.respondFailure(w, r, err)
		return
	}
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req switchWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.WorkspaceID == "" {
		respondError(w, http.StatusBadRequest, "workspaceId is required")
		return
	}

	// Persist the selection first; the session is then re-derived from the
	// durable store, so it only ever reflects what was actually saved.
	if err := s.settings.SetCurrentWorkspace(r.Context(), data.UserID, req.WorkspaceID); err != nil {
		s.respondFailure(w, r, err)
		return
	}
	if err := s.sessions.SwitchWorkspace(r.Context(), w, r, data.UserID); err != nil {
		s.respondFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// respondFailure maps infrastructure errors: an unreachable session store is
// 503 so clients retry, everything else is an opaque 500.
func (s *Service) respondFailure(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, cachestore.ErrUnavailable) {
		s.log.ErrorContext(r.Context(), "session store unavailable", "error", err)
		respondError(w, http.StatusServiceUnavailable, "session store unavailable")
		return
	}
	s.log.ErrorContext(r.Context(), "request failed", "error", err)
	respondError(w, http.StatusInternalServerError, "internal error")
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
