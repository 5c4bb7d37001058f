package session

import (
	"strings"
	"time"
)

// Config holds session lifecycle configuration.
type Config struct {
	// AppURL is the deployment's public endpoint. Its scheme drives the
	// Secure flag on credential cookies.
	AppURL string `env:"APP_URL" envDefault:"http://localhost:8080"`

	// AccessCookieName is the name of the access credential cookie.
	AccessCookieName string `env:"SESSION_ACCESS_COOKIE_NAME" envDefault:"accessToken"`

	// RefreshCookieName is the name of the refresh credential cookie.
	RefreshCookieName string `env:"SESSION_REFRESH_COOKIE_NAME" envDefault:"refreshToken"`

	// RenewalPath scopes the refresh cookie so browsers only send the
	// long-lived credential to the session renewal endpoint.
	RenewalPath string `env:"SESSION_RENEWAL_PATH" envDefault:"/session"`

	AccessTokenTTL  time.Duration `env:"SESSION_ACCESS_TOKEN_TTL" envDefault:"24h"`
	RefreshTokenTTL time.Duration `env:"SESSION_REFRESH_TOKEN_TTL" envDefault:"1440h"`

	// SessionTTL is the safety-net expiry on the primary record and the
	// index structures, bounding how long leaked residue can survive.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"1440h"`

	// FanOutConcurrency bounds how many sessions a fan-out refreshes in
	// parallel. 1 means strictly sequential.
	FanOutConcurrency int `env:"SESSION_FANOUT_CONCURRENCY" envDefault:"8"`
}

// DefaultConfig returns default session configuration: 24h access tokens,
// 60-day refresh tokens and session records.
func DefaultConfig() Config {
	return Config{
		AppURL:            "http://localhost:8080",
		AccessCookieName:  "accessToken",
		RefreshCookieName: "refreshToken",
		RenewalPath:       "/session",
		AccessTokenTTL:    24 * time.Hour,
		RefreshTokenTTL:   60 * 24 * time.Hour,
		SessionTTL:        60 * 24 * time.Hour,
		FanOutConcurrency: 8,
	}
}

// secureCookies reports whether credential cookies must carry the Secure
// flag, which is the case iff the public endpoint serves encrypted transport.
func (c Config) secureCookies() bool {
	return strings.HasPrefix(c.AppURL, "https://")
}
