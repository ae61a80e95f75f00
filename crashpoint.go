package first

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
)

// crashCounter is the process-wide monotonically increasing counter from the
// data model: initial value 0, incremented exactly once per CrashPoint call
// in Execution phase, never decremented or reset within a process.
//
// Add is Go's sequentially-consistent atomic increment, which is exactly the
// ordering §5 requires: for any two calls A, B in program order, A's
// observed id is strictly less than B's, even if a user inadvertently
// introduces concurrency.
var crashCounter atomic.Uint64

// CrashPoint marks a location in user code where FIRST may simulate a
// power-loss crash.
//
// It is a no-op in Orchestrator and Verify phases: no counter increment, no
// allocation, no I/O. In Execution phase it atomically increments the
// counter, and if the new 1-indexed value equals the configured target
// crash point, it emits crash metadata to stderr and terminates the process
// by an uncatchable signal.
//
// label is carried verbatim into the CrashInfo the matching Verify phase
// receives. Labels need not be unique.
func CrashPoint(label string) {
	cfg := runtime()
	if cfg.phase != phaseExecution {
		return
	}

	currentID := crashCounter.Add(1)

	if !cfg.haveCrashTarget || currentID != cfg.targetCrashPoint {
		return
	}

	emitCrashRecord(currentID, label)
	killSelf()
}

// emitCrashRecord writes a single-line JSON crash record directly to the
// stderr file descriptor. It deliberately avoids log.Logger or
// bufio.Writer: os.Stderr.Write is itself an unbuffered syscall, which is
// what guarantees the record survives the SIGKILL that follows immediately
// after.
func emitCrashRecord(pointID uint64, label string) {
	seed := os.Getenv(envSeed)
	if seed == "" {
		seed = "null"
	} else {
		seed = `"` + jsonEscape(seed) + `"`
	}
	workDir := os.Getenv(envWorkDir)
	if workDir == "" {
		workDir = "unknown"
	}

	line := fmt.Sprintf(
		"{\"event\":\"crash\",\"point_id\":%d,\"label\":\"%s\",\"seed\":%s,\"work_dir\":\"%s\"}\n",
		pointID, jsonEscape(label), seed, jsonEscape(workDir),
	)
	_, _ = os.Stderr.WriteString(line)
}

func jsonEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
