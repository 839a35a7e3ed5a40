package thread

import (
	"golang.org/x/sys/windows"
)

// Windows has no per-thread signal masks; the signal hooks are no-ops.

func blockAllSignals() (any, error) {
	return nil, nil
}

func restoreSignalMask(any) error {
	return nil
}

// setThreadName sets the thread description of the calling thread.
// SetThreadDescription is resolved dynamically by x/sys; on older Windows
// versions the call fails and naming is skipped.
func setThreadName(name string) error {
	desc, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	return windows.SetThreadDescription(windows.CurrentThread(), desc)
}

func currentThreadID() int {
	return int(windows.GetCurrentThreadId())
}
