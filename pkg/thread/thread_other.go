//go:build !linux && !windows

package thread

// Signal masking and thread naming are best-effort; platforms without the
// facilities get no-op hooks.

func blockAllSignals() (any, error) {
	return nil, nil
}

func restoreSignalMask(any) error {
	return nil
}

func setThreadName(string) error {
	return nil
}

func currentThreadID() int {
	return 0
}
