// Package pulse manages background threads and periodic tasks for host
// libraries.
//
// A library that spawns many background threads over its lifetime (flush
// timers, rollover checks, retry pollers) ends up duplicating signal-mask
// handling, thread naming, and scheduling logic at every call site. pulse
// centralizes both concerns behind one Manager:
//
//   - a thread lifecycle policy: three pluggable hooks (pre-start,
//     started, post-start) applied uniformly to every thread started
//     through the manager, with presets for signal blocking and OS-level
//     thread naming;
//   - a periodic task scheduler: one shared worker thread executing a
//     dynamically changing set of named, independently-timed, fallible
//     tasks with bounded retry and graceful shutdown.
//
// # Quick start
//
// Most hosts use the lazily-created process-wide manager:
//
//	pulse.AddPeriodicTask("flush", func() error {
//	    return writer.Flush()
//	}, 5*time.Second)
//
//	if pulse.HasPeriodicTask("flush") {
//	    pulse.RemovePeriodicTask("flush")
//	}
//
//	// During shutdown, stop the worker and run registered teardown:
//	atexit.Run()
//
// The first AddPeriodicTask starts the worker thread; removing the last
// task lets it stop itself. Task failures are logged, retried on the
// normal schedule, and the task is evicted after three consecutive
// failures. See the scheduler package for the full semantics.
//
// # Thread policy
//
// By default every thread started through pulse blocks all deliverable
// signals for its lifetime and restores the previous mask on exit, so
// host-process signal handling never lands on a library thread. Presets
// are applied process-wide:
//
//	pulse.Configure(thread.PolicyBlockSignalsAndNameThread)
//
//	h := pulse.StartThread("uploader", runUploader)
//	h.Join()
//
// Custom hooks replace all three slots as one atomic unit:
//
//	pulse.ConfigureHooks(pre, started, post)
//
// # Dedicated managers
//
// Tests and hosts embedding several independent schedulers create their
// own instances:
//
//	m := pulse.New(
//	    pulse.WithLogger(logger.NewDevelopment()),
//	    pulse.WithRetryLimit(5),
//	)
//	defer m.Close()
//
// Each Manager owns one worker thread and registers its teardown with
// pkg/atexit so the worker is always stopped and joined before the
// process exits.
package pulse
