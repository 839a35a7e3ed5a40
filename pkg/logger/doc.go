// Package logger builds the slog loggers pulse uses as its diagnostic
// sink.
//
// The scheduler and thread registry never surface failures to their
// callers — a failing periodic task, a signal-mask syscall error, a
// naming failure all land in the diagnostic log and nowhere else. This
// package provides ready-made sinks for the common deployments:
//
//	log := logger.New()            // JSON to stdout, production
//	log := logger.NewDevelopment() // colorized console via tint
//	log := logger.NewNope()        // discard everything
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//	    DSN:         os.Getenv("SENTRY_DSN"),
//	    Environment: "production",
//	})
//
// NewWithSentry fans records out to stdout and Sentry; with an empty DSN
// or a failed Sentry init it degrades gracefully to stdout only, so the
// same code path works in development.
package logger
