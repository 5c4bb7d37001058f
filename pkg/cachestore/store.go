package cachestore

import (
	"context"
	"time"
)

// Store is the minimal key-value contract the session kit needs from a shared
// cache: plain values with TTL, sets, and hashes. Every method is a single
// independent round-trip; the kit never assumes multi-key atomicity, so
// implementations are free to map each call 1:1 onto the underlying store.
//
// Absence is not an error: Get and HashGet report a missing key/field through
// their boolean return and a nil error. A non-nil error always means the store
// itself could not be reached or refused the operation.
type Store interface {
	// Get returns the value stored at key, or ok=false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value at key. A positive ttl schedules expiry; zero means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete removes the given keys. Deleting an absent key is not an error.
	Delete(ctx context.Context, keys ...string) error

	// Expire resets the TTL of an existing key. Expiring an absent key is a no-op.
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// SetAdd adds member to the set at key, creating the set if needed.
	SetAdd(ctx context.Context, key, member string) error

	// SetRemove removes member from the set at key. Absent member is a no-op.
	SetRemove(ctx context.Context, key, member string) error

	// SetMembers returns all members of the set at key; empty slice when absent.
	SetMembers(ctx context.Context, key string) ([]string, error)

	// HashSet stores value under field in the hash at key.
	HashSet(ctx context.Context, key, field, value string) error

	// HashGet returns the value under field, or ok=false when absent.
	HashGet(ctx context.Context, key, field string) (value string, ok bool, err error)

	// HashDelete removes field from the hash at key. Absent field is a no-op.
	HashDelete(ctx context.Context, key, field string) error
}
