// Package jwt wraps github.com/golang-jwt/jwt/v5 with the narrow surface the
// session kit needs: minting and verifying HS256 tokens whose only
// application claim is the subject.
//
// The Service type deliberately does not accept arbitrary claim structures.
// Session credentials bind a session identifier and an expiry, nothing else,
// so the API takes a subject and a TTL and returns a compact signed token.
// Each token also carries a unique jti claim.
//
// # Usage
//
//	svc, err := jwt.NewFromString("a-signing-key-of-at-least-32-chars")
//	if err != nil {
//	    // handle error
//	}
//
//	token, err := svc.Generate("session-id", 24*time.Hour)
//
//	subject, err := svc.Subject(token)
//	if errors.Is(err, jwt.ErrExpiredToken) {
//	    // treat as no credential
//	}
//
// # Errors
//
// Verification failures surface as sentinel errors (ErrInvalidToken,
// ErrExpiredToken, ErrUnexpectedSigningMethod) so callers can collapse every
// kind of bad credential into "no session" without string matching.
package jwt
