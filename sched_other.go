//go:build !linux

package main

import "fmt"

func useFifoScheduler() error {
	return fmt.Errorf("%w: FIFO scheduling is only available on Linux", ErrPrivilege)
}

func useStandardScheduler() error { return nil }
