package orchestrator

import (
	"fmt"

	"github.com/danshapiro/first/internal/fingerprint"
	"github.com/danshapiro/first/internal/protocol"
)

// reproductionBanner is built when a Verify child fails or crashes while
// inspecting the workspace an Execution child left behind after hitting
// rec. vres.exitCode is 137/SIGKILL if the verifier itself called
// CrashPoint, which is a protocol violation the banner calls out by name.
func reproductionBanner(testName string, rec protocol.CrashRecord, leaf string, vres childResult) string {
	detail := fmt.Sprintf("verification rejected the recovered workspace (exit %d)", vres.exitCode)
	if vres.outcome == outcomeCrashed {
		detail = "the verifier itself hit a CrashPoint; Verify closures must not call CrashPoint"
	}

	return fmt.Sprintf(
		"first: crash point %d (%q) FAILED: %s\n"+
			"  workspace: %s\n"+
			"  fingerprint: %s\n"+
			"  reproduce: FIRST_PHASE=VERIFY FIRST_WORK_DIR=%s FIRST_CRASH_POINT_ID=%d FIRST_CRASH_LABEL=%s \\\n"+
			"    go test -run '^%s$' -v .\n",
		rec.PointID, rec.Label, detail, leaf, fingerprint.Short(leaf),
		leaf, rec.PointID, rec.Label, testName,
	)
}

// executionFailureBanner is built when an Execution child exits nonzero
// without having been killed by a CrashPoint: a bug in the workload itself,
// not a crash-consistency failure.
func executionFailureBanner(testName string, target uint64, leaf string, res childResult) string {
	return fmt.Sprintf(
		"first: crash target %d FAILED: workload exited with code %d before reaching that crash point\n"+
			"  workspace: %s\n"+
			"  fingerprint: %s\n"+
			"  reproduce: FIRST_PHASE=EXECUTION FIRST_CRASH_TARGET=%d FIRST_WORK_DIR=%s \\\n"+
			"    go test -run '^%s$' -v .\n",
		target, res.exitCode, leaf, fingerprint.Short(leaf), target, leaf, testName,
	)
}
