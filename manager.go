package pulse

import (
	"sync"
	"time"

	"github.com/dmitrymomot/pulse/pkg/atexit"
	"github.com/dmitrymomot/pulse/pkg/logger"
	"github.com/dmitrymomot/pulse/pkg/scheduler"
	"github.com/dmitrymomot/pulse/pkg/thread"
)

// Manager binds a thread lifecycle registry and a periodic task scheduler
// into one unit with process lifetime. Its teardown (stop and join the
// worker thread) is registered with pkg/atexit at construction, so a host
// that calls atexit.Run during shutdown never leaks the worker.
type Manager struct {
	threads *thread.Registry
	sched   *scheduler.Scheduler
	exit    *atexit.Entry

	closeOnce sync.Once
}

// New creates a manager with its own thread registry and scheduler.
func New(opts ...Option) *Manager {
	cfg := &config{
		logger:     logger.NewNope(),
		policy:     thread.PolicyBlockSignalsOnly,
		retryLimit: -1, // keep scheduler default unless overridden
	}
	for _, opt := range opts {
		opt(cfg)
	}

	threads := thread.NewRegistry(thread.WithLogger(cfg.logger))
	threads.Apply(cfg.policy)

	schedOpts := []scheduler.Option{scheduler.WithLogger(cfg.logger)}
	if cfg.retryLimit >= 0 {
		schedOpts = append(schedOpts, scheduler.WithRetryLimit(cfg.retryLimit))
	}

	m := &Manager{
		threads: threads,
		sched:   scheduler.New(threads, schedOpts...),
	}
	m.exit = atexit.Register(m.Close)
	return m
}

// Close stops the worker thread, waits for it to exit, and deregisters
// the manager's teardown. Close is idempotent.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		m.sched.RemoveAll()
		m.exit.Cancel()
	})
}

// Configure installs one of the preset thread lifecycle policies.
func (m *Manager) Configure(p thread.Policy) {
	m.threads.Apply(p)
}

// ConfigureHooks replaces all three lifecycle hooks in one atomic step.
// Any hook may be nil.
func (m *Manager) ConfigureHooks(pre thread.PreStartFunc, started thread.StartedFunc, post thread.PostStartFunc) {
	m.threads.Configure(pre, started, post)
}

// StartThread runs body on a new thread with the current hooks applied.
func (m *Manager) StartThread(name string, body func()) *thread.Handle {
	return m.threads.Start(name, body)
}

// AddPeriodicTask registers a named task that runs every interval on the
// shared worker thread, starting it if needed. Task failures never reach
// the caller; they are logged and retried on the normal schedule.
func (m *Manager) AddPeriodicTask(name string, task scheduler.Task, interval time.Duration) {
	m.sched.Add(name, task, interval)
}

// AddCronTask registers a named task scheduled by a 5-field cron
// expression. Returns scheduler.ErrInvalidCronExpression when the
// expression does not parse.
func (m *Manager) AddCronTask(name string, task scheduler.Task, expr string) error {
	return m.sched.AddCron(name, task, expr)
}

// HasPeriodicTask reports whether a task with the given name is
// registered and not marked for removal.
func (m *Manager) HasPeriodicTask(name string) bool {
	return m.sched.Has(name)
}

// RemovePeriodicTask marks the first task with the given name for
// removal. No-op if absent.
func (m *Manager) RemovePeriodicTask(name string) {
	m.sched.Remove(name)
}

// RemovePeriodicTasksMatching marks every task whose name starts with
// prefix for removal. No-op if none match.
func (m *Manager) RemovePeriodicTasksMatching(prefix string) {
	m.sched.RemoveMatching(prefix)
}

// RemoveAllPeriodicTasks clears the task store and stops the worker
// thread, blocking until it has fully exited.
func (m *Manager) RemoveAllPeriodicTasks() {
	m.sched.RemoveAll()
}

// Threads returns the manager's thread registry, for hosts that start
// their own background threads under the shared policy.
func (m *Manager) Threads() *thread.Registry {
	return m.threads
}

// Scheduler returns the manager's scheduler, for direct access such as
// health checks: scheduler.Healthcheck(m.Scheduler()).
func (m *Manager) Scheduler() *scheduler.Scheduler {
	return m.sched
}
