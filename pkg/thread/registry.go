package thread

import (
	"io"
	"log/slog"
	"runtime"
	"sync/atomic"
)

// config holds registry configuration.
type config struct {
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*config)

// WithLogger sets the logger used to report hook failures and recovered
// body panics. If not set, failures are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Registry holds the current hook set and starts threads with it applied.
// The zero value is not usable; create one with NewRegistry.
type Registry struct {
	hooks  atomic.Pointer[Hooks]
	logger *slog.Logger
}

// NewRegistry creates a registry with PolicyBlockSignalsOnly installed.
func NewRegistry(opts ...Option) *Registry {
	cfg := &config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r := &Registry{logger: cfg.logger}
	r.Apply(PolicyBlockSignalsOnly)
	return r
}

// Configure replaces all three hook slots in one atomic step.
// Any slot may be nil. Configure cannot fail.
func (r *Registry) Configure(pre PreStartFunc, started StartedFunc, post PostStartFunc) {
	r.hooks.Store(&Hooks{
		PreStart:  pre,
		Started:   started,
		PostStart: post,
	})
}

// Apply installs one of the preset hook configurations.
func (r *Registry) Apply(p Policy) {
	switch p {
	case PolicyNameThreadOnly:
		r.Configure(nil, r.nameThreadHook(), nil)
	case PolicyBlockSignalsOnly:
		r.Configure(r.blockSignalsHook(), nil, r.restoreSignalsHook())
	case PolicyBlockSignalsAndNameThread:
		r.Configure(r.blockSignalsHook(), r.nameThreadHook(), r.restoreSignalsHook())
	default:
		r.Configure(nil, nil, nil)
	}
}

// PreStart returns the currently configured pre-start hook, or nil.
func (r *Registry) PreStart() PreStartFunc {
	return r.hooks.Load().PreStart
}

// Started returns the currently configured started hook, or nil.
func (r *Registry) Started() StartedFunc {
	return r.hooks.Load().Started
}

// PostStart returns the currently configured post-start hook, or nil.
func (r *Registry) PostStart() PostStartFunc {
	return r.hooks.Load().PostStart
}

// Handle allows waiting for a started thread to exit.
type Handle struct {
	done chan struct{}
}

// Join blocks until the thread has fully exited, including its post-start
// hook. Join may be called from multiple goroutines and after exit.
func (h *Handle) Join() {
	<-h.done
}

// Done returns a channel closed when the thread exits.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Start runs body on a new thread with the current hook set applied:
// pre-start, started, body, post-start. The hook set is snapshotted once
// before the thread begins, so a concurrent Configure never produces a
// partial mix. The goroutine is locked to an OS thread for its lifetime.
//
// A nil body still runs the hooks. A panic in the body is recovered and
// logged; the post-start hook runs regardless.
func (r *Registry) Start(name string, body func()) *Handle {
	h := &Handle{done: make(chan struct{})}
	hooks := r.hooks.Load()

	go func() {
		defer close(h.done)

		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		var saved any
		if hooks.PreStart != nil {
			saved = hooks.PreStart()
		}
		if hooks.PostStart != nil {
			defer hooks.PostStart(saved)
		}
		if hooks.Started != nil {
			hooks.Started(name, currentThreadID())
		}
		if body != nil {
			r.runBody(name, body)
		}
	}()

	return h
}

func (r *Registry) runBody(name string, body func()) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("thread body panicked",
				slog.String("thread", name),
				slog.Any("panic", rec),
			)
		}
	}()
	body()
}

// blockSignalsHook saves the current signal mask and blocks all
// deliverable signals. On failure the save is recorded as invalid (nil)
// so the post-start hook never restores an unknown mask.
func (r *Registry) blockSignalsHook() PreStartFunc {
	return func() any {
		saved, err := blockAllSignals()
		if err != nil {
			r.logger.Warn("unable to set thread signal mask", slog.Any("error", err))
			return nil
		}
		return saved
	}
}

func (r *Registry) restoreSignalsHook() PostStartFunc {
	return func(saved any) {
		if saved == nil {
			return
		}
		if err := restoreSignalMask(saved); err != nil {
			r.logger.Warn("unable to restore thread signal mask", slog.Any("error", err))
		}
	}
}

func (r *Registry) nameThreadHook() StartedFunc {
	return func(name string, _ int) {
		if err := setThreadName(name); err != nil {
			r.logger.Warn("unable to set thread name",
				slog.String("thread", name),
				slog.Any("error", err),
			)
		}
	}
}
