//go:build linux

package ioc

import "golang.org/x/sys/unix"

// currentThreadID returns the kernel thread id of the calling OS thread.
// PerThread lifetime callers must have pinned the calling goroutine with
// runtime.LockOSThread beforehand — this package cannot enforce that, it
// can only key its cache on whatever thread is actually running.
func currentThreadID() int {
	return unix.Gettid()
}
