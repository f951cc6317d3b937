//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux implementation of thread CPU affinity via sched_setaffinity,
// pure Go through golang.org/x/sys/unix.

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// setAffinityPlatform binds the calling thread to a single CPU.
func setAffinityPlatform(cpuID int) error {
	if cpuID >= runtime.NumCPU() {
		return fmt.Errorf("affinity: cpu %d out of range [0, %d)", cpuID, runtime.NumCPU())
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity failed: %w", err)
	}
	return nil
}

// clearAffinityPlatform restores the full CPU mask for the calling thread.
func clearAffinityPlatform() {
	var set unix.CPUSet
	set.Zero()
	for i := 0; i < runtime.NumCPU(); i++ {
		set.Set(i)
	}
	// Best effort: a failure leaves the previous mask in place.
	_ = unix.SchedSetaffinity(0, &set)
}
