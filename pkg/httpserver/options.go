package httpserver

import "log/slog"

// Option configures the Server beyond what Config covers.
type Option func(*Server)

// WithLogger supplies a logger for lifecycle events; logs are discarded
// otherwise.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}
