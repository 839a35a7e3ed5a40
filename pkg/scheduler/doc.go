// Package scheduler runs a dynamically changing set of named periodic
// tasks on a single shared worker thread.
//
// A host library that needs many small recurring activities (flush timers,
// rollover checks, retry pollers) registers each one as a named task with
// its own interval. One worker thread multiplexes all of them: at each
// wake it executes every due task serially, isolates per-task failures,
// evicts removed or persistently failing tasks, and sleeps until the
// earliest next due time.
//
// # Usage
//
//	s := scheduler.New(thread.NewRegistry(),
//	    scheduler.WithLogger(log),
//	)
//
//	s.Add("flush", func() error { return w.Flush() }, 5*time.Second)
//	s.Add("rollover", checkRollover, time.Minute)
//
//	// Cron expressions are supported for calendar-based schedules.
//	_ = s.AddCron("daily-compact", compact, "0 3 * * *")
//
//	// ...
//	s.RemoveAll() // stops and joins the worker
//
// The first Add spawns the worker through the thread registry, so the
// process-wide lifecycle hooks (signal masking, thread naming) apply to
// it. The worker stops itself when the task store drains, and a later Add
// starts a fresh one.
//
// # Failure handling
//
// A task failure (returned error or recovered panic) is logged with the
// task name and never surfaces to the caller; the task is retried on its
// normal schedule. A task that fails more than the retry limit in a row
// (default 2, so three consecutive failures) is silently evicted. The
// only trace of an evicted task is in the diagnostic log.
//
// # Concurrency
//
// Tasks never run concurrently with each other; a slow task delays every
// other task due at the same wake. Task bodies run while the store lock
// is held, so they must not call back into the scheduler's blocking
// RemoveAll from another goroutine and must not block on slow external
// resources. Add, Has, Remove, RemoveMatching, and RemoveAll are safe to
// call from any goroutine.
//
// Scheduling jitter of up to one task execution is accepted; there are no
// real-time guarantees and no per-task execution timeouts.
package scheduler
