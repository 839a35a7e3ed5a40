package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
)

// Task is an opaque unit of work. A returned error counts as a failure;
// a panic is recovered and counted the same way.
type Task func() error

// job is one named periodic task. Jobs are created by Add/AddCron,
// mutated only by the worker loop (execution, rescheduling, error count)
// and by the removal operations (tombstone), and deleted only by the
// worker's eviction pass. Removal never blocks on an executing job.
type job struct {
	name       string
	interval   time.Duration
	schedule   cron.Schedule // nil for fixed-interval jobs
	run        Task
	nextRun    time.Time
	errorCount int
	removed    bool
}

// reschedule advances nextRun from the given completion time, so slow
// jobs self-throttle instead of tight-looping.
func (j *job) reschedule(from time.Time) {
	if j.schedule != nil {
		j.nextRun = j.schedule.Next(from)
		return
	}
	j.nextRun = from.Add(j.interval)
}

// due reports whether the job should execute at the given instant.
func (j *job) due(now time.Time) bool {
	return !j.nextRun.After(now)
}
