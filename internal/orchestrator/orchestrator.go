// Package orchestrator implements the supervisor loop: repeatedly re-exec
// the test binary in Execution phase with successive 1-indexed crash
// targets, classify how each child terminated, and when a child hits a
// CrashPoint, re-exec once more in Verify phase against the workspace it
// left behind.
package orchestrator

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/danshapiro/first/internal/config"
	"github.com/danshapiro/first/internal/leafstate"
	"github.com/danshapiro/first/internal/protocol"
	"github.com/danshapiro/first/internal/workspace"
)

// inFlight guards against a nested first.Test(t).Execute() call reaching
// Run for a test whose loop this process is already driving. RuntimeConfig
// is computed once per process from the environment, so a nested call from
// Orchestrator phase would otherwise try to start a second supervisor loop
// sharing the same cached phase; this rejects that explicitly rather than
// leaving it undefined. Entries are keyed by test name, so distinct tests
// (e.g. t.Parallel tests) may run their loops concurrently.
var inFlight sync.Map

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeCrashed
	outcomeFailed
)

// Run drives the crash/restart/verify loop for the test named by t.Name().
// Any failure, including a protocol violation by a child, is reported
// through t.Fatalf.
func Run(t *testing.T) {
	t.Helper()

	if _, busy := inFlight.LoadOrStore(t.Name(), struct{}{}); busy {
		panic("first: nested first.Test(t).Execute() call detected inside an already-running Orchestrator loop")
	}
	defer inFlight.Delete(t.Name())

	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("first: resolve test binary path: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("first: getwd: %v", err)
	}
	cfg, err := config.LoadDefault(cwd)
	if err != nil {
		t.Fatalf("first: load %s: %v", config.FileName, err)
	}

	base, err := workspace.AllocateBase(cfg.BaseDir)
	if err != nil {
		t.Fatalf("first: allocate workspace: %v", err)
	}

	ctx, stop := signalCancelContext()
	defer stop()

	keepArtifacts := cfg.KeepArtifacts
	if raw, ok := os.LookupEnv(protocol.EnvKeepArtifacts); ok {
		keepArtifacts = raw != ""
	}
	testFilter := "-test.run=^" + regexp.QuoteMeta(t.Name()) + "$"

	for target := uint64(1); ; target++ {
		leaf := workspace.Leaf(base, target)
		if err := os.MkdirAll(leaf, 0o755); err != nil {
			t.Fatalf("first: create workspace %s: %v", leaf, err)
		}

		res, err := runChild(ctx, exe, testFilter, leaf, phaseExecutionEnv(target, leaf), cfg.InterruptGrace)
		if err != nil {
			t.Fatalf("first: run execution child (crash target %d): %v\n  workspace: %s", target, err, leaf)
		}

		switch res.outcome {
		case outcomeSuccess:
			// The workload ran to completion without reaching the target
			// crash point: every CrashPoint call site has now been
			// exercised, so this is the last iteration.
			if !keepArtifacts {
				os.RemoveAll(leaf)
			}
			return

		case outcomeCrashed:
			rec, ok := protocol.ScanCrashRecord(bytes.NewReader(res.stderr))
			if !ok {
				// A signal kill is authoritative on its own: the child was
				// terminated before it could write (or flush) its crash
				// record. Degrade to a synthetic CrashInfo rather than
				// failing the run, since the kill itself already proves a
				// crash happened at or after the requested target.
				rec = protocol.CrashRecord{PointID: 0, Label: "unknown"}
			}

			vres, verr := runChild(ctx, exe, testFilter, leaf, phaseVerifyEnv(leaf, rec), cfg.InterruptGrace)
			if verr != nil {
				t.Fatalf("first: run verify child (crash point %d %q): %v\n  workspace: %s", rec.PointID, rec.Label, verr, leaf)
			}
			if vres.outcome != outcomeSuccess {
				if keepArtifacts {
					saveLeafState(leaf, t.Name(), target, rec, leafstate.StatusFailed, vres)
				}
				t.Fatalf("%s", reproductionBanner(t.Name(), rec, leaf, vres))
			}

			if keepArtifacts {
				saveLeafState(leaf, t.Name(), target, rec, leafstate.StatusVerified, vres)
			} else {
				os.RemoveAll(leaf)
			}

		case outcomeFailed:
			if keepArtifacts {
				saveLeafState(leaf, t.Name(), target, protocol.CrashRecord{}, leafstate.StatusFailed, res)
			}
			t.Fatalf("%s", executionFailureBanner(t.Name(), target, leaf, res))
		}

		if ctx.Err() != nil {
			t.Fatalf("first: interrupted, outstanding child terminated\n  workspace: %s", leaf)
		}
	}
}

// saveLeafState records why a preserved leaf workspace ended the way it
// did, so cmd/firstdoctor can describe it without re-deriving the crash
// schedule. Write failures are logged but not fatal: losing the sidecar
// record must never mask the underlying test failure it is reporting on.
func saveLeafState(leaf, testName string, target uint64, rec protocol.CrashRecord, status leafstate.Status, res childResult) {
	reason := ""
	if status != leafstate.StatusVerified {
		reason = fmt.Sprintf("exit code %d", res.exitCode)
	}
	err := leafstate.Save(leaf, leafstate.Record{
		Timestamp:       time.Now(),
		TestName:        testName,
		CrashTarget:     target,
		CrashPointID:    rec.PointID,
		CrashLabel:      rec.Label,
		Status:          status,
		FailureReason:   reason,
		OrchestratorPID: os.Getpid(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "first: warning: save leaf state for %s: %v\n", leaf, err)
	}
}
