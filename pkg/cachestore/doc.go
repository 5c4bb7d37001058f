// Package cachestore defines the key-value contract the session kit uses to
// talk to its shared cache, together with a production Redis implementation
// and an in-memory implementation for tests.
//
// The Store interface deliberately exposes only independent single-key
// round-trips (values with TTL, sets, hashes). Multi-step sequences built on
// top of it - detaching a session from one index and attaching it to another,
// deleting a record and cleaning up its residue - are therefore not atomic,
// and packages layered on cachestore document the interleavings they accept.
//
// # Usage
//
//	client, err := cachestore.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error, probably terminate the application
//	}
//	store := cachestore.NewRedisStore(client)
//
//	if err := store.Set(ctx, "session:abc", payload, 60*24*time.Hour); err != nil {
//	    // store unreachable
//	}
//
// Tests substitute NewMemoryStore(), which implements the same contract with
// mutex-guarded maps and lazy TTL expiry.
//
// # Errors
//
// Absence of a key, set member, or hash field is reported through boolean or
// empty returns, never as an error. A non-nil error always wraps
// ErrUnavailable and means the store itself could not be reached.
package cachestore
