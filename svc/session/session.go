package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"slices"
)

// Data is the cached session record. It is owned exclusively by the
// session:{id} cache entry; nothing mutates it in place - lifecycle
// operations always rewrite the whole record.
//
// Empty WorkspaceID or RoleID is a valid, inert state ("no active workspace",
// "no role"), not an error: consumers must not treat it as a broken session.
type Data struct {
	WorkspaceID        string   `json:"workspaceId"`
	UserID             string   `json:"userId"`
	RoleID             string   `json:"roleId"`
	Permissions        []string `json:"permissions"`
	BaseType           string   `json:"baseType,omitempty"`
	SubscriptionStatus string   `json:"subscriptionStatus,omitempty"`
	SubscriptionPlan   string   `json:"subscriptionPlan,omitempty"`
}

// HasWorkspace reports whether the session has an active workspace.
func (d Data) HasWorkspace() bool {
	return d.WorkspaceID != ""
}

// Can reports whether the session's permission set contains the capability.
func (d Data) Can(permission string) bool {
	return slices.Contains(d.Permissions, permission)
}

// generateSessionID creates an opaque, URL-safe session identifier with 256
// bits of entropy. Identifiers are never reused; this is the sole join key
// across the primary record, the forward hashes, and the reverse sets.
func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
