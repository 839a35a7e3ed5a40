package thread

// PreStartFunc runs on a newly started thread before its body.
// The returned value is opaque saved state (for the signal-blocking hook,
// the previous signal mask) that is handed to the PostStartFunc. Return
// nil when there is nothing to restore.
type PreStartFunc func() any

// StartedFunc runs on a newly started thread immediately after it begins,
// receiving the human-readable thread name and the OS thread id. Naming
// syscalls operate on the calling thread, so no separate handle is needed.
type StartedFunc func(name string, tid int)

// PostStartFunc runs on the thread after its body returns, receiving the
// state the PreStartFunc saved. It runs even when the body panics.
type PostStartFunc func(saved any)

// Hooks is one atomic unit of lifecycle callbacks. Any slot may be nil.
type Hooks struct {
	PreStart  PreStartFunc
	Started   StartedFunc
	PostStart PostStartFunc
}

// Policy selects a preset hook configuration.
type Policy int

const (
	// PolicyNone installs no hooks.
	PolicyNone Policy = iota
	// PolicyNameThreadOnly names the OS thread after the Start name.
	PolicyNameThreadOnly
	// PolicyBlockSignalsOnly blocks all deliverable signals on the thread
	// and restores the previous mask on exit. This is the default for a
	// new Registry.
	PolicyBlockSignalsOnly
	// PolicyBlockSignalsAndNameThread combines both.
	PolicyBlockSignalsAndNameThread
)
