package session

import "log/slog"

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithConfig sets custom configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.cfg = cfg
	}
}

// WithLogger sets the logger used by the manager and its collaborators.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithFanOutConcurrency bounds fan-out parallelism; 1 means sequential.
func WithFanOutConcurrency(limit int) Option {
	return func(m *Manager) {
		if limit > 0 {
			m.cfg.FanOutConcurrency = limit
		}
	}
}
