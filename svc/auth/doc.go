// Package auth verifies account credentials against bcrypt password hashes
// stored in the users collection. It deliberately knows nothing about
// sessions: the HTTP layer authenticates here first, then asks the session
// manager to establish a session for the returned account identifier.
package auth
