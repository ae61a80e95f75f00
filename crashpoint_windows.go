//go:build windows

package first

import "os"

// killSelf on Windows has no SIGKILL equivalent that skips destructors as
// reliably as POSIX's uncatchable signal. os.Process.Kill (TerminateProcess)
// is the closest available primitive; the Orchestrator on this platform
// treats any nonzero, non-normal exit from an Execution child as the
// expected crash rather than requiring an exact 137/SIGKILL match. This is
// a reduced guarantee relative to the POSIX build and is documented here
// rather than silently assumed.
func killSelf() {
	proc, err := os.FindProcess(os.Getpid())
	if err == nil {
		_ = proc.Kill()
	}
	os.Exit(137)
}
