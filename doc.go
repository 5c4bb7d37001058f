// Package sessionkit manages distributed user sessions backed by a shared
// key-value cache: signed cookie credentials, one-time refresh rotation,
// workspace-scoped session data denormalized from a durable record store, and
// fan-out propagation of role, account, and workspace changes to every
// derived session.
//
// The building blocks live in three trees:
//
//   - pkg/ holds reusable infrastructure: the cache store abstraction over
//     redis, signed cookies, JWT issuance, env configuration, structured
//     logging, and the HTTP server wrapper.
//   - svc/ holds the domain services: svc/session is the lifecycle core,
//     svc/records reads the durable account/workspace/role documents, and
//     svc/auth verifies login credentials.
//   - modules/ holds mountable HTTP surfaces; modules/auth exposes login,
//     renewal, logout, and workspace switching.
//
// cmd/server wires everything into a runnable service.
package sessionkit
