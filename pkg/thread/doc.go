// Package thread provides a uniform lifecycle policy for background threads.
//
// Libraries that spawn many background threads over their lifetime (flush
// timers, rollover checks, retry pollers) tend to duplicate signal-mask
// handling and thread naming at every call site. This package centralizes
// that policy: a Registry holds three optional lifecycle hooks that are
// applied around the body of every thread started through it.
//
// # Hooks
//
// Three hooks run around a thread body, in order:
//
//   - PreStart runs on the new thread before the body and returns opaque
//     saved state (typically the previous signal mask).
//   - Started runs immediately after, receiving the human-readable thread
//     name and the OS thread id.
//   - PostStart runs after the body returns, receiving the state PreStart
//     saved. It runs even when the body panics, so anything PreStart
//     changed is always restored.
//
// All three are replaced as a single unit by Configure: a thread starting
// concurrently observes either the fully-old or the fully-new hook set,
// never a mix.
//
// # Policies
//
// Four presets cover the common configurations:
//
//	registry := thread.NewRegistry()               // blocks signals by default
//	registry.Apply(thread.PolicyBlockSignalsAndNameThread)
//
//	h := registry.Start("flusher", func() {
//	    // runs with all signals blocked, OS thread named "flusher"
//	})
//	h.Join()
//
// Signal masking and thread naming are best-effort: a failed syscall is
// reported through the registry's logger and the thread continues running
// unnamed or unmasked. On platforms without the relevant facility the
// hooks are no-ops.
//
// # Threads
//
// Start locks the spawned goroutine to an OS thread for its lifetime,
// since per-thread signal masks and names are only meaningful on a pinned
// thread. Bodies are expected to be long-running loops; a panic in the
// body is recovered and logged so the post-start hook and the process
// survive.
package thread
