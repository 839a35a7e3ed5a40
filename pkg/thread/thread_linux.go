package thread

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// taskCommLen is the kernel limit for a thread name, including the
// terminating NUL.
const taskCommLen = 16

// blockAllSignals blocks every deliverable signal on the calling thread
// and returns the previous mask.
func blockAllSignals() (any, error) {
	var all unix.Sigset_t
	for i := range all.Val {
		all.Val[i] = ^uint64(0)
	}

	var old unix.Sigset_t
	if err := unix.PthreadSigmask(unix.SIG_SETMASK, &all, &old); err != nil {
		return nil, err
	}
	return &old, nil
}

// restoreSignalMask restores a mask previously returned by
// blockAllSignals. A value of any other type is ignored.
func restoreSignalMask(saved any) error {
	old, ok := saved.(*unix.Sigset_t)
	if !ok || old == nil {
		return nil
	}
	return unix.PthreadSigmask(unix.SIG_SETMASK, old, nil)
}

// setThreadName sets the OS-visible name of the calling thread,
// truncated to the kernel's 15-byte limit.
func setThreadName(name string) error {
	buf := make([]byte, taskCommLen)
	copy(buf[:taskCommLen-1], name)
	return unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0)
}

// currentThreadID returns the OS thread id of the calling thread.
func currentThreadID() int {
	return unix.Gettid()
}
