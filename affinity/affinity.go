// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are
// located in separate files (affinity_linux.go, affinity_windows.go, etc.)
// guarded by build tags.
//
// Pinning the producer and consumer of a ring to distinct cores keeps the
// index counters in predictable cache domains and removes scheduler
// migration jitter from the hot path.

package affinity

import "runtime"

// Pin locks the calling goroutine to its OS thread and binds that thread
// to the given logical CPU. cpuID < 0 is a no-op, so callers can thread a
// "disabled" configuration value straight through.
func Pin(cpuID int) error {
	if cpuID < 0 {
		return nil
	}
	runtime.LockOSThread()
	if err := setAffinityPlatform(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// Unpin clears the platform affinity mask and releases the OS thread lock.
func Unpin() {
	clearAffinityPlatform()
	runtime.UnlockOSThread()
}
