// Package session is the distributed session/token lifecycle core: it
// issues, validates, refreshes, and revokes user sessions cached in a shared
// key-value store, and propagates changes to a role, account, or workspace to
// every session derived from that entity.
//
// # Data layout
//
// Each live session is a JSON record at session:{id} (60-day TTL). Around it:
//
//   - refreshToken:{id} - the single currently valid refresh credential
//     value; its existence and value gate session renewal.
//   - role:{id}:sessions, user:{id}:sessions, workspace:{id}:sessions -
//     reverse sets answering "which sessions derive from this entity".
//   - session:role, session:user, session:workspace - forward hashes
//     answering "which reverse sets does this session currently live in",
//     consulted when an association changes or the session dies.
//
// For every live session the forward hashes match the record's fields and the
// session is a member of exactly the three reverse sets those values name.
// The guarantee is eventual, not linearizable: multi-step operations are not
// atomic, and a delete racing an update can strand residue. Absence of the
// primary record is authoritative - index or credential residue of a dead
// session is garbage to be tolerated (and eventually expired), never a live
// session.
//
// # Credentials
//
// Sessions travel as two signed JWT cookies minted by the TokenIssuer: a
// 24-hour access credential (path /) and a 60-day single-use refresh
// credential scoped to the renewal endpoint. Both bind only the session
// identifier. Every verification failure - missing cookie, bad signature,
// expiry, rotated refresh value - collapses to "no session" rather than an
// error; only a store transport failure surfaces.
//
// # Fan-out
//
// When a role's permissions, an account, or a workspace change, the matching
// reverse set enumerates the affected sessions and each one is re-derived
// from the durable store through the best-effort Loader, with bounded
// parallelism and per-member failure isolation.
package session
