package first

import "testing"

func TestPhaseString(t *testing.T) {
	cases := []struct {
		p    phase
		want string
	}{
		{phaseOrchestrator, "ORCHESTRATOR"},
		{phaseExecution, "EXECUTION"},
		{phaseVerify, "VERIFY"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Errorf("phase(%d).String() = %q, want %q", c.p, got, c.want)
		}
	}
}

// TestRuntimeDefaultsToOrchestrator relies on this test binary never having
// FIRST_PHASE set in its own environment: runtime() caches its result for
// the lifetime of the process via sync.OnceValue, so this is the only safe
// place to assert the default. Execution/Verify phase behavior is exercised
// through re-exec'd child processes in package tests, never in-process,
// since those phases can terminate the process by design.
func TestRuntimeDefaultsToOrchestrator(t *testing.T) {
	cfg := runtime()
	if cfg.phase != phaseOrchestrator {
		t.Fatalf("default phase = %v, want ORCHESTRATOR", cfg.phase)
	}
	if cfg.haveCrashTarget {
		t.Fatalf("default runtime config should have no crash target")
	}
}

func TestNoCrashTargetSentinel(t *testing.T) {
	if noCrashTarget != ^uint64(0) {
		t.Fatalf("noCrashTarget = %d, want max uint64", noCrashTarget)
	}
}
