package records

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist. Not a
	// transport failure; lookups that can tolerate missing data check for it
	// with errors.Is.
	ErrNotFound = errors.New("records: not found")

	// ErrFailedToConnect indicates the record store could not be reached
	// during bootstrap.
	ErrFailedToConnect = errors.New("records: failed to connect to mongo")
)
