package cachestore

import "errors"

var (
	// ErrFailedToParseConnString indicates the redis connection URL is malformed.
	ErrFailedToParseConnString = errors.New("cachestore: failed to parse redis connection string")

	// ErrStoreNotReady indicates the store did not become reachable within the
	// configured retry budget.
	ErrStoreNotReady = errors.New("cachestore: store did not become ready within the given time period")

	// ErrUnavailable wraps transport-level failures talking to the store.
	ErrUnavailable = errors.New("cachestore: store unavailable")
)
