// Package auth is the HTTP surface of the session lifecycle: JSON endpoints
// for login, credential renewal, logout, and workspace switching, with the
// signed session cookies set and cleared as a side effect.
//
// Routes:
//
//	POST /login            authenticate and establish a session
//	POST /session          rotate the credential pair off the refresh cookie
//	POST /logout           revoke the session and clear cookies
//	POST /workspace/switch persist a workspace selection and re-derive the session
//
// Credential failures are 401, malformed payloads 400, and an unreachable
// session store 503.
package auth
