package scheduler

import "errors"

// Scheduler errors.
var (
	// ErrInvalidCronExpression is returned by AddCron when the expression
	// does not parse.
	ErrInvalidCronExpression = errors.New("scheduler: invalid cron expression")

	// ErrHealthcheckFailed is returned when the scheduler health check fails.
	ErrHealthcheckFailed = errors.New("scheduler: healthcheck failed")
)
