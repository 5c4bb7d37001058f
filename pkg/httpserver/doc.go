// Package httpserver wraps net/http with graceful shutdown, env-driven
// listener configuration, and health-check probes.
//
// Run blocks until the context is cancelled or an interrupt/TERM signal
// arrives, then drains in-flight requests within the configured deadline.
// Failures are wrapped with the ErrStart and ErrShutdown sentinels for
// errors.Is inspection.
package httpserver
