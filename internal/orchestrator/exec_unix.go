//go:build !windows

package orchestrator

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// classifyExit distinguishes a clean exit, a CrashPoint-triggered kill, and
// an ordinary nonzero-exit failure, using the raw wait status. os.ProcessState
// only hands back the portable syscall.WaitStatus; it and unix.WaitStatus
// share the same uint32 layout on every unix GOOS this package builds for, so
// the conversion below is safe and gets us unix's richer, better-documented
// inspection helpers instead of re-deriving them from the bare syscall
// package. Exit code 137 (128+SIGKILL) is treated the same as an observed
// SIGKILL signal, since a child whose parent's process group reaps it
// through a shell layer can surface as either depending on the platform.
func classifyExit(state *os.ProcessState) outcome {
	raw, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		if state.Success() {
			return outcomeSuccess
		}
		return outcomeFailed
	}
	ws := unix.WaitStatus(raw)

	switch {
	case ws.Exited() && ws.ExitStatus() == 0:
		return outcomeSuccess
	case ws.Signaled() && ws.Signal() == unix.SIGKILL:
		return outcomeCrashed
	case ws.Exited() && ws.ExitStatus() == 137:
		return outcomeCrashed
	default:
		return outcomeFailed
	}
}
