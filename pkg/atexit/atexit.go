// Package atexit holds process-teardown callbacks.
//
// Go has no hook that runs when the process exits, so the registry is
// explicit: components register their teardown at construction time, and
// the host application calls Run from its shutdown path (typically right
// before main returns). Callbacks run in reverse registration order, each
// at most once.
//
//	entry := atexit.Register(manager.Close)
//	defer atexit.Run()
//
//	// A component torn down early takes itself off the list:
//	entry.Cancel()
package atexit

import "sync"

var registry = &list{}

// list is an ordered set of pending teardown callbacks.
type list struct {
	mu      sync.Mutex
	pending []registration
	nextID  uint64
}

type registration struct {
	id uint64
	fn func()
}

// Entry identifies a registered callback so it can be canceled.
type Entry struct {
	id uint64
}

// Register appends a teardown callback. A nil fn returns an inert entry.
func Register(fn func()) *Entry {
	if fn == nil {
		return &Entry{}
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	registry.nextID++
	registry.pending = append(registry.pending, registration{id: registry.nextID, fn: fn})
	return &Entry{id: registry.nextID}
}

// Cancel removes the callback from the registry. Canceling an entry that
// already ran, or canceling twice, is a no-op.
func (e *Entry) Cancel() {
	if e == nil || e.id == 0 {
		return
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	for i, r := range registry.pending {
		if r.id == e.id {
			registry.pending = append(registry.pending[:i], registry.pending[i+1:]...)
			return
		}
	}
}

// Run executes all pending callbacks in reverse registration order.
// Callbacks registered while Run is in progress are executed too. Run is
// idempotent: a second call with nothing pending returns immediately.
func Run() {
	for {
		registry.mu.Lock()
		n := len(registry.pending)
		if n == 0 {
			registry.mu.Unlock()
			return
		}
		r := registry.pending[n-1]
		registry.pending = registry.pending[:n-1]
		registry.mu.Unlock()

		// Invoked outside the lock so a callback may register or cancel.
		r.fn()
	}
}
