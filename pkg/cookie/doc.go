// Package cookie implements the transport side of the session credential
// protocol: HMAC-SHA256 signed cookies with rotating secrets.
//
// The Manager signs with the first configured secret and verifies against all
// of them, so secrets can be rotated without invalidating cookies issued
// under the previous secret. Values travel as base64(value)|base64(hmac);
// verification uses constant-time comparison.
//
// Per-cookie attributes (path, max-age, Secure, SameSite) are supplied as
// functional options on each call, because the session kit sets its two
// credential cookies with different paths and lifetimes. Delete takes the
// same options: a cookie is only cleared when the expiring Set-Cookie carries
// the path it was originally scoped to.
package cookie
