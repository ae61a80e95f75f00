//go:build windows

package orchestrator

import "os"

// classifyExit on Windows has no SIGKILL-equivalent visible through
// os.ProcessState, so any nonzero exit is treated as a crash. This is a
// reduced guarantee relative to the POSIX build: a genuine workload bug that
// happens to exit nonzero without ever calling CrashPoint will be
// misclassified as a crash and handed to the Verify closure instead of
// failing the Execution step directly, matching crashpoint_windows.go's
// documented fallback.
func classifyExit(state *os.ProcessState) outcome {
	if state.Success() {
		return outcomeSuccess
	}
	return outcomeCrashed
}
