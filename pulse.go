package pulse

import (
	"sync"
	"time"

	"github.com/dmitrymomot/pulse/pkg/scheduler"
	"github.com/dmitrymomot/pulse/pkg/thread"
)

// defaultManager is the lazily-created process-wide instance. It is never
// torn down implicitly; its atexit registration stops the worker when the
// host runs its shutdown path.
var defaultManager = sync.OnceValue(func() *Manager {
	return New()
})

// Default returns the process-wide manager, creating it on first use.
func Default() *Manager {
	return defaultManager()
}

// Configure installs a preset thread lifecycle policy on the default
// manager.
func Configure(p thread.Policy) {
	Default().Configure(p)
}

// ConfigureHooks replaces the default manager's lifecycle hooks in one
// atomic step.
func ConfigureHooks(pre thread.PreStartFunc, started thread.StartedFunc, post thread.PostStartFunc) {
	Default().ConfigureHooks(pre, started, post)
}

// StartThread runs body on a new thread under the default manager's
// hooks.
func StartThread(name string, body func()) *thread.Handle {
	return Default().StartThread(name, body)
}

// AddPeriodicTask registers a named periodic task with the default
// manager.
func AddPeriodicTask(name string, task scheduler.Task, interval time.Duration) {
	Default().AddPeriodicTask(name, task, interval)
}

// AddCronTask registers a cron-scheduled task with the default manager.
func AddCronTask(name string, task scheduler.Task, expr string) error {
	return Default().AddCronTask(name, task, expr)
}

// HasPeriodicTask reports whether the default manager has a live task
// with the given name.
func HasPeriodicTask(name string) bool {
	return Default().HasPeriodicTask(name)
}

// RemovePeriodicTask marks the first matching task for removal on the
// default manager.
func RemovePeriodicTask(name string) {
	Default().RemovePeriodicTask(name)
}

// RemovePeriodicTasksMatching marks every task with the given name prefix
// for removal on the default manager.
func RemovePeriodicTasksMatching(prefix string) {
	Default().RemovePeriodicTasksMatching(prefix)
}

// RemoveAllPeriodicTasks clears the default manager's task store and
// stops its worker thread, blocking until it has exited.
func RemoveAllPeriodicTasks() {
	Default().RemoveAllPeriodicTasks()
}
