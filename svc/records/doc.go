// Package records is the read-only contract over the durable record store the
// session kit reloads authoritative session data from: account settings,
// workspace memberships, workspaces, and roles.
//
// The Source interface exposes exactly the four lookups the session loader
// performs. Absence is reported as ErrNotFound, distinct from transport
// errors, because the loader treats a missing record as legitimate empty data
// rather than a failure to retry.
//
// MongoSource implements Source against MongoDB (the collections are written
// by other services; this kit never writes them). MemorySource is the test
// and local-development substitute.
package records
