package scheduler

import "log/slog"

const (
	defaultRetryLimit = 2
	defaultThreadName = "pulse-scheduler"
)

// config holds scheduler configuration.
type config struct {
	logger     *slog.Logger
	retryLimit int
	threadName string
}

// Option configures the scheduler.
type Option func(*config)

// WithLogger sets the diagnostic sink for task failures, evictions, and
// worker lifecycle records. If not set, diagnostics are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRetryLimit sets how many consecutive failures a task may accumulate
// before it is evicted. A task is evicted after retryLimit+1 failures in
// a row. Defaults to 2.
func WithRetryLimit(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.retryLimit = n
		}
	}
}

// WithThreadName sets the OS-visible name given to the worker thread.
// Defaults to "pulse-scheduler".
func WithThreadName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.threadName = name
		}
	}
}
