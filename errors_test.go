package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	require.Equal(t, ExitOK, exitCode(nil))
	require.Equal(t, ExitConfiguration, exitCode(fmt.Errorf("%w: bad option", ErrConfiguration)))
	require.Equal(t, ExitCounter, exitCode(fmt.Errorf("%w: no such counter", ErrCounterUnavailable)))
	require.Equal(t, ExitMismatch, exitCode(fmt.Errorf("%w: arrays differ", ErrMismatch)))
	require.Equal(t, ExitInternal, exitCode(fmt.Errorf("%w: stop before start", ErrSequence)))
	require.Equal(t, ExitInternal, exitCode(fmt.Errorf("%w: allocation failed", ErrResource)))
	require.Equal(t, ExitKernel, exitCode(fmt.Errorf("%w: run panicked", ErrKernelExecution)))
	require.Equal(t, ExitKernel, exitCode(fmt.Errorf("plain failure")))
}
