package scheduler

import (
	"context"
	"errors"
)

var (
	errSchedulerNil     = errors.New("scheduler is nil")
	errWorkerNotRunning = errors.New("worker not running")
)

// Healthcheck returns a health check function reporting whether the
// scheduler's worker thread is running. An idle scheduler (no tasks ever
// added, or the store drained) reports unhealthy, since no task would
// execute.
func Healthcheck(s *Scheduler) func(ctx context.Context) error {
	return func(_ context.Context) error {
		if s == nil {
			return errors.Join(ErrHealthcheckFailed, errSchedulerNil)
		}

		s.mu.Lock()
		running := s.running
		s.mu.Unlock()

		if !running {
			return errors.Join(ErrHealthcheckFailed, errWorkerNotRunning)
		}
		return nil
	}
}
