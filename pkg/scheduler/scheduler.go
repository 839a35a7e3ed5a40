package scheduler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/dmitrymomot/pulse/pkg/thread"
)

// cronParser accepts standard 5-field expressions (min hour dom month dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Scheduler multiplexes named periodic tasks onto one worker thread.
// Create one with New; the zero value is not usable.
type Scheduler struct {
	logger     *slog.Logger
	threads    *thread.Registry
	retryLimit int
	threadName string

	// mu guards the job store and the worker state. Task bodies execute
	// with mu held; see the package documentation for the implications.
	mu          sync.Mutex
	jobs        []*job
	maxInterval time.Duration
	running     bool
	generation  uint64
	worker      *thread.Handle

	// The wake channel and termination flag are deliberately separate
	// from mu so that waking the worker never contends with concurrent
	// store mutation.
	wake       chan struct{}
	terminated atomic.Bool
}

// New creates a scheduler that spawns its worker through the given thread
// registry, so the process-wide lifecycle hooks apply to it. No worker
// runs until the first task is added.
func New(threads *thread.Registry, opts ...Option) *Scheduler {
	cfg := &config{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		retryLimit: defaultRetryLimit,
		threadName: defaultThreadName,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if threads == nil {
		threads = thread.NewRegistry(thread.WithLogger(cfg.logger))
	}

	return &Scheduler{
		logger:     cfg.logger,
		threads:    threads,
		retryLimit: cfg.retryLimit,
		threadName: cfg.threadName,
		wake:       make(chan struct{}, 1),
	}
}

// Add registers a named task that runs every interval, first at
// now+interval. Names are unique by convention only; duplicates are legal
// and Has/Remove operate on the first match. Add cannot fail: task errors
// are contained by the worker and reported through the logger.
//
// The first Add starts the worker thread; subsequent calls wake it so a
// short-interval task is not delayed by a stale wake time.
func (s *Scheduler) Add(name string, task Task, interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if interval > s.maxInterval {
		s.maxInterval = interval
	}
	s.jobs = append(s.jobs, &job{
		name:     name,
		interval: interval,
		run:      task,
		nextRun:  time.Now().Add(interval),
	})
	s.ensureWorkerLocked()
}

// AddCron registers a named task scheduled by a standard 5-field cron
// expression. Apart from how the next run time advances, cron tasks
// behave exactly like interval tasks (failure containment, retry limit,
// removal). Returns ErrInvalidCronExpression when the expression does not
// parse.
func (s *Scheduler) AddCron(name string, task Task, expr string) error {
	schedule, err := cronParser.Parse(expr)
	if err != nil {
		return errors.Join(ErrInvalidCronExpression, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	next := schedule.Next(now)
	if d := next.Sub(now); d > s.maxInterval {
		s.maxInterval = d
	}
	s.jobs = append(s.jobs, &job{
		name:     name,
		schedule: schedule,
		run:      task,
		nextRun:  next,
	})
	s.ensureWorkerLocked()
	return nil
}

// Has reports whether a task with the given name is registered and not
// marked for removal.
func (s *Scheduler) Has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		if !j.removed && j.name == name {
			return true
		}
	}
	return false
}

// Remove marks the first task with the given name for removal and wakes
// the worker. The task is deleted by the worker's next eviction pass, so
// removal never blocks on a currently executing task. No-op if absent.
func (s *Scheduler) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		if !j.removed && j.name == name {
			j.removed = true
			s.signalWake()
			return
		}
	}
}

// RemoveMatching marks every task whose name starts with prefix for
// removal. No-op if none match.
func (s *Scheduler) RemoveMatching(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		if !j.removed && strings.HasPrefix(j.name, prefix) {
			j.removed = true
		}
	}
	s.signalWake()
}

// RemoveAll clears the task store and stops the worker thread, blocking
// until it has fully exited. Calling it when no task was ever added
// returns immediately. The scheduler is reusable afterwards: a later Add
// starts a fresh worker.
func (s *Scheduler) RemoveAll() {
	s.mu.Lock()
	s.jobs = nil
	worker := s.worker
	s.mu.Unlock()

	s.terminated.Store(true)
	s.signalWake()
	if worker != nil {
		worker.Join()
	}
}

// ensureWorkerLocked starts the worker if none is running, or wakes the
// running one. Callers must hold s.mu.
func (s *Scheduler) ensureWorkerLocked() {
	if s.running {
		s.signalWake()
		return
	}
	s.terminated.Store(false)
	s.running = true
	s.generation++
	gen := s.generation
	s.worker = s.threads.Start(s.threadName, func() { s.loop(gen) })
}

// signalWake nudges the worker without blocking; a single pending signal
// is enough since the worker re-scans the whole store on every wake.
func (s *Scheduler) signalWake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// loop is the worker thread body. It repeats until terminated: execute
// all due tasks, evict removed and persistently failing ones, then sleep
// until the earliest next run or a wake signal. The wake time is bounded
// by the largest interval ever registered so a newly added short-interval
// task is never stalled behind a far-future due time.
func (s *Scheduler) loop(gen uint64) {
	runID := uuid.NewString()
	s.logger.Debug("scheduler worker started",
		slog.String("run_id", runID),
		slog.String("thread", s.threadName),
	)
	defer func() {
		s.mu.Lock()
		// A successor worker may already be running; only the current
		// generation clears the flag.
		if s.generation == gen {
			s.running = false
		}
		s.mu.Unlock()
		s.logger.Debug("scheduler worker stopped", slog.String("run_id", runID))
	}()

	for !s.terminated.Load() {
		now := time.Now()

		s.mu.Lock()
		// Upper bound on the sleep: the largest interval ever registered.
		// Guarantees a periodic re-scan even when every job is far in the
		// future, so a task added with a short interval is never missed
		// indefinitely.
		nextWake := now.Add(s.maxInterval)
		for _, j := range s.jobs {
			if s.terminated.Load() {
				s.mu.Unlock()
				return
			}
			if j.removed {
				continue
			}
			if j.due(now) {
				if err := s.execute(j); err != nil {
					s.logger.Error("periodic task failed",
						slog.String("task", j.name),
						slog.Any("error", err),
					)
					j.errorCount++
				} else {
					j.errorCount = 0
				}
				j.reschedule(time.Now())
			}
			if j.nextRun.Before(nextWake) {
				nextWake = j.nextRun
			}
		}
		s.evictLocked()
		if len(s.jobs) == 0 {
			// Mark the worker stopped while still holding the lock, so a
			// concurrent Add observes it and spawns a fresh worker instead
			// of waking a dying one.
			s.running = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		timer := time.NewTimer(time.Until(nextWake))
		select {
		case <-timer.C:
		case <-s.wake:
			timer.Stop()
		}
	}
}

// evictLocked deletes tombstoned tasks and tasks whose consecutive
// failures exceed the retry limit. Callers must hold s.mu.
func (s *Scheduler) evictLocked() {
	kept := s.jobs[:0]
	for _, j := range s.jobs {
		if j.removed {
			continue
		}
		if j.errorCount > s.retryLimit {
			s.logger.Warn("periodic task evicted after repeated failures",
				slog.String("task", j.name),
				slog.Int("failures", j.errorCount),
			)
			continue
		}
		kept = append(kept, j)
	}
	// Drop references so evicted jobs are collectable.
	for i := len(kept); i < len(s.jobs); i++ {
		s.jobs[i] = nil
	}
	s.jobs = kept
}

// execute runs one task, converting a panic into an error so a
// misbehaving task can never take down the worker.
func (s *Scheduler) execute(j *job) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("task panic: %v", rec)
		}
	}()
	return j.run()
}
