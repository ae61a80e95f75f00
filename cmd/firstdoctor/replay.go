package main

import (
	"fmt"
	"strconv"

	"github.com/danshapiro/first/internal/leafstate"
	"github.com/danshapiro/first/internal/procstatus"
)

// pidStatus describes whether the orchestrator process that produced a
// leaf record is still running, so an operator knows whether FIRST is
// mid-run against this workspace before touching it.
func pidStatus(pid int) string {
	if pid <= 0 {
		return "unknown"
	}
	if procstatus.Alive(pid) {
		return "still running"
	}
	return "exited"
}

// reproCommand builds the shell command that re-runs the failing phase
// against a preserved leaf workspace: the Execution phase for a failed leaf
// with no recorded crash point, the Verify phase otherwise. It mirrors the
// banner format the Orchestrator itself prints on failure.
func reproCommand(dir string, rec leafstate.Record) string {
	if rec.Status == leafstate.StatusFailed && rec.CrashPointID == 0 {
		return fmt.Sprintf(
			"FIRST_PHASE=EXECUTION FIRST_CRASH_TARGET=%d FIRST_WORK_DIR=%s go test -run '^%s$' -v .",
			rec.CrashTarget, dir, rec.TestName,
		)
	}
	return fmt.Sprintf(
		"FIRST_PHASE=VERIFY FIRST_WORK_DIR=%s FIRST_CRASH_POINT_ID=%s FIRST_CRASH_LABEL=%s go test -run '^%s$' -v .",
		dir, strconv.FormatUint(rec.CrashPointID, 10), rec.CrashLabel, rec.TestName,
	)
}
