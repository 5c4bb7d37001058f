package config

import "errors"

var (
	// ErrNilPointer indicates a nil configuration pointer was passed to Load.
	ErrNilPointer = errors.New("config: nil pointer")

	// ErrParsingConfig wraps env tag parsing failures.
	ErrParsingConfig = errors.New("config: failed to parse environment")
)
