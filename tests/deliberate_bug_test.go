package tests

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danshapiro/first"
)

// deliberateBugGateEnv gates TestDeliberateBugHelper so a plain
// `go test ./tests/...` run never executes the deliberately buggy workload
// directly; only the re-exec'd child TestDeliberateBugReportsFailure spawns
// sees it run.
const deliberateBugGateEnv = "FIRST_RUN_DELIBERATE_BUG_HELPER"

// TestDeliberateBugReportsFailure demonstrates FIRST catching a real bug: a
// Verify closure that expects a file the workload never wrote. It re-execs
// this same test binary restricted to the helper test below and asserts
// the child run fails with the Orchestrator's reproduction banner, using
// the same subprocess-test-helper idiom the Go standard library's own
// os/exec tests use for exercising failure paths without failing the
// outer test run.
func TestDeliberateBugReportsFailure(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err, "resolve test binary")

	cmd := exec.Command(exe, "-test.run=^TestDeliberateBugHelper$", "-test.v=true")
	cmd.Env = append(os.Environ(), deliberateBugGateEnv+"=1")
	out, runErr := cmd.CombinedOutput()

	require.Errorf(t, runErr, "expected the deliberately buggy workload to fail, but the child exited 0\noutput:\n%s", out)
	require.Containsf(t, string(out), "FAILED", "expected FIRST's reproduction banner in child output, got:\n%s", out)
}

// TestDeliberateBugHelper is not a real test by itself: it only runs as the
// re-exec'd child above, gated by deliberateBugGateEnv.
func TestDeliberateBugHelper(t *testing.T) {
	if os.Getenv(deliberateBugGateEnv) == "" {
		t.Skip("only runs as a re-exec'd child of TestDeliberateBugReportsFailure")
	}

	first.Test(t).
		Run(func(env *first.Env) {
			// Deliberately never creates required.txt, which Verify expects.
			first.CrashPoint("never_flushed")
		}).
		Verify(func(env *first.Env, crash *first.CrashInfo) {
			if _, err := os.Stat(env.Path("required.txt")); err != nil {
				t.Fatalf("bug reproduced: workload never created required.txt: %v", err)
			}
		}).
		Execute()
}
