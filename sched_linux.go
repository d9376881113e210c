//go:build linux

package main

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

type schedParam struct {
	priority int32
}

func setScheduler(policy int, priority int32) error {
	param := schedParam{priority: priority}
	_, _, errno := unix.Syscall(
		unix.SYS_SCHED_SETSCHEDULER,
		0,
		uintptr(policy),
		uintptr(unsafe.Pointer(&param)),
	)
	if errno != 0 {
		return errno
	}
	return nil
}

// useFifoScheduler requests real-time FIFO scheduling at the highest FIFO
// priority, matching the PolyBench/C behavior. Denied requests surface as
// ErrPrivilege so the caller can continue under the default scheduler.
func useFifoScheduler() error {
	max, _, errno := unix.Syscall(unix.SYS_SCHED_GET_PRIORITY_MAX, unix.SCHED_FIFO, 0, 0)
	if errno != 0 {
		return fmt.Errorf("failed to query FIFO priority range: %w", errno)
	}
	err := setScheduler(unix.SCHED_FIFO, int32(max))
	if errors.Is(err, unix.EPERM) {
		return fmt.Errorf("%w: FIFO scheduling denied: %v", ErrPrivilege, err)
	}
	if err != nil {
		return fmt.Errorf("failed to set FIFO scheduler: %w", err)
	}
	return nil
}

// useStandardScheduler restores the default time-sharing policy.
func useStandardScheduler() error {
	if err := setScheduler(unix.SCHED_NORMAL, 0); err != nil {
		return fmt.Errorf("failed to restore standard scheduler: %w", err)
	}
	return nil
}
