package main

import "errors"

// Error kinds produced by the harness. Every fatal error reaching the CLI
// boundary wraps exactly one of these, which selects the process exit code.
var (
	// ErrConfiguration marks a bad or unknown option in the option list.
	ErrConfiguration = errors.New("configuration error")
	// ErrPrivilege marks a denied scheduler change. Reported, never fatal.
	ErrPrivilege = errors.New("privilege error")
	// ErrCounterUnavailable marks a requested hardware counter the host
	// cannot provide. Partial counter sets are never reported.
	ErrCounterUnavailable = errors.New("counter unavailable")
	// ErrResource marks an allocation failure in the cache flusher.
	ErrResource = errors.New("resource error")
	// ErrSequence marks timer engine misuse and indicates a harness bug.
	ErrSequence = errors.New("sequence error")
	// ErrKernelExecution wraps any failure raised by kernel init or run.
	ErrKernelExecution = errors.New("kernel execution error")
	// ErrMismatch reports a verification Mismatch. Not a harness failure,
	// but the run still exits non-zero.
	ErrMismatch = errors.New("verification mismatch")
)

// Exit codes reported by the polybench binary.
const (
	ExitOK            = 0
	ExitKernel        = 1
	ExitConfiguration = 2
	ExitCounter       = 3
	ExitMismatch      = 4
	ExitInternal      = 5
)

// exitCode maps an error chain to the exit code of its outermost kind.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrConfiguration):
		return ExitConfiguration
	case errors.Is(err, ErrCounterUnavailable):
		return ExitCounter
	case errors.Is(err, ErrMismatch):
		return ExitMismatch
	case errors.Is(err, ErrSequence), errors.Is(err, ErrResource):
		return ExitInternal
	default:
		return ExitKernel
	}
}
