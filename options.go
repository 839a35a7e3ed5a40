package pulse

import (
	"log/slog"

	"github.com/dmitrymomot/pulse/pkg/thread"
)

// config holds manager configuration.
type config struct {
	logger     *slog.Logger
	policy     thread.Policy
	retryLimit int
}

// Option configures a Manager.
type Option func(*config)

// WithLogger sets the diagnostic sink shared by the thread registry and
// the scheduler. If not set, diagnostics are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPolicy sets the initial thread lifecycle policy.
// Defaults to thread.PolicyBlockSignalsOnly.
func WithPolicy(p thread.Policy) Option {
	return func(c *config) {
		c.policy = p
	}
}

// WithRetryLimit sets how many consecutive failures a periodic task may
// accumulate before eviction. Defaults to 2.
func WithRetryLimit(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.retryLimit = n
		}
	}
}
