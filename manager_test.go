package pulse_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pulse"
	"github.com/dmitrymomot/pulse/pkg/atexit"
	"github.com/dmitrymomot/pulse/pkg/scheduler"
	"github.com/dmitrymomot/pulse/pkg/thread"
)

func TestManager_PeriodicTaskLifecycle(t *testing.T) {
	t.Parallel()

	m := pulse.New()
	defer m.Close()

	var counter atomic.Int64
	m.AddPeriodicTask("counter", func() error {
		counter.Add(1)
		return nil
	}, 20*time.Millisecond)

	require.True(t, m.HasPeriodicTask("counter"))
	require.Eventually(t, func() bool { return counter.Load() >= 2 },
		time.Second, 5*time.Millisecond)

	m.RemovePeriodicTask("counter")
	assert.False(t, m.HasPeriodicTask("counter"))
}

func TestManager_RemoveMatchingAndAll(t *testing.T) {
	t.Parallel()

	m := pulse.New()
	defer m.Close()

	noop := func() error { return nil }
	m.AddPeriodicTask("log.flush", noop, time.Hour)
	m.AddPeriodicTask("log.rollover", noop, time.Hour)
	m.AddPeriodicTask("metrics", noop, time.Hour)

	m.RemovePeriodicTasksMatching("log.")
	assert.False(t, m.HasPeriodicTask("log.flush"))
	assert.False(t, m.HasPeriodicTask("log.rollover"))
	assert.True(t, m.HasPeriodicTask("metrics"))

	m.RemoveAllPeriodicTasks()
	assert.False(t, m.HasPeriodicTask("metrics"))
}

func TestManager_AddCronTask(t *testing.T) {
	t.Parallel()

	m := pulse.New()
	defer m.Close()

	require.NoError(t, m.AddCronTask("nightly", func() error { return nil }, "0 3 * * *"))
	assert.True(t, m.HasPeriodicTask("nightly"))

	err := m.AddCronTask("bad", func() error { return nil }, "bogus")
	assert.ErrorIs(t, err, scheduler.ErrInvalidCronExpression)
}

func TestManager_StartThreadUsesHooks(t *testing.T) {
	t.Parallel()

	m := pulse.New()
	defer m.Close()

	hookRan := make(chan string, 1)
	m.ConfigureHooks(nil, func(name string, _ int) { hookRan <- name }, nil)

	m.StartThread("custom", func() {}).Join()

	select {
	case name := <-hookRan:
		assert.Equal(t, "custom", name)
	case <-time.After(time.Second):
		t.Fatal("started hook did not run")
	}
}

func TestManager_ConfigurePolicy(t *testing.T) {
	t.Parallel()

	m := pulse.New(pulse.WithPolicy(thread.PolicyNone))
	defer m.Close()

	assert.Nil(t, m.Threads().PreStart())

	m.Configure(thread.PolicyBlockSignalsAndNameThread)
	assert.NotNil(t, m.Threads().PreStart())
	assert.NotNil(t, m.Threads().Started())
	assert.NotNil(t, m.Threads().PostStart())
}

func TestManager_WithRetryLimit(t *testing.T) {
	t.Parallel()

	m := pulse.New(pulse.WithRetryLimit(0))
	defer m.Close()

	var runs atomic.Int64
	m.AddPeriodicTask("fragile", func() error {
		runs.Add(1)
		return assert.AnError
	}, 5*time.Millisecond)

	require.Eventually(t, func() bool { return !m.HasPeriodicTask("fragile") },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(1), runs.Load(), "retry limit 0 evicts after the first failure")
}

func TestManager_CloseIdempotent(t *testing.T) {
	t.Parallel()

	m := pulse.New()
	m.AddPeriodicTask("job", func() error { return nil }, time.Hour)

	m.Close()
	assert.NotPanics(t, m.Close)
	assert.False(t, m.HasPeriodicTask("job"))
}

func TestManager_AtexitStopsWorker(t *testing.T) {
	// Uses the process-wide atexit registry; not parallel.
	m := pulse.New()
	m.AddPeriodicTask("job", func() error { return nil }, 10*time.Millisecond)

	check := scheduler.Healthcheck(m.Scheduler())
	require.NoError(t, check(context.Background()))

	atexit.Run()

	assert.ErrorIs(t, check(context.Background()), scheduler.ErrHealthcheckFailed,
		"atexit teardown stops and joins the worker")
}
