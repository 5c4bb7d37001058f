package session

import "errors"

var (
	// ErrTokenGeneration indicates session identifier generation failed.
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrCorruptedRecord indicates the primary session record could not be
	// decoded. Surfaced rather than silently treated as absent so operators
	// notice a serialization mismatch between deployments.
	ErrCorruptedRecord = errors.New("session.corrupted_record")
)
