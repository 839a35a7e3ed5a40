package thread

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockAndRestoreSignals(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		saved, err := blockAllSignals()
		require.NoError(t, err)
		require.NotNil(t, saved)

		require.NoError(t, restoreSignalMask(saved))
	}()
	<-done
}

func TestRestoreSignalMask_IgnoresForeignState(t *testing.T) {
	t.Parallel()

	assert.NoError(t, restoreSignalMask(nil))
	assert.NoError(t, restoreSignalMask("not a mask"))
}

func TestSetThreadName(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		assert.NoError(t, setThreadName("pulse-test"))
		// Longer than the 15-byte kernel limit; must truncate, not fail.
		assert.NoError(t, setThreadName("pulse-test-with-a-very-long-name"))
	}()
	<-done
}

func TestCurrentThreadID(t *testing.T) {
	t.Parallel()

	assert.Positive(t, currentThreadID())
}
