package first

import (
	"os"
	"strconv"
	"sync"

	"github.com/danshapiro/first/internal/protocol"
)

// Environment variable names making up the protocol between the
// Orchestrator process and its re-exec'd children; see internal/protocol
// for the canonical definitions shared with the Orchestrator.
const (
	envPhase        = protocol.EnvPhase
	envCrashTarget  = protocol.EnvCrashTarget
	envWorkDir      = protocol.EnvWorkDir
	envCrashPointID = protocol.EnvCrashPointID
	envCrashLabel   = protocol.EnvCrashLabel
	envSeed         = protocol.EnvSeed
)

// noCrashTarget is the sentinel "never crash" value for phases other than
// Execution, per the data model's RuntimeConfig.TargetCrashPoint.
const noCrashTarget = ^uint64(0)

type phase int

const (
	phaseOrchestrator phase = iota
	phaseExecution
	phaseVerify
)

func (p phase) String() string {
	switch p {
	case phaseExecution:
		return "EXECUTION"
	case phaseVerify:
		return "VERIFY"
	default:
		return "ORCHESTRATOR"
	}
}

// runtimeConfig is the immutable per-process record described in the data
// model: the Phase, and (only in Execution) the 1-indexed TargetCrashPoint.
type runtimeConfig struct {
	phase             phase
	targetCrashPoint  uint64
	haveCrashTarget   bool
}

var loadRuntimeConfig = sync.OnceValue(func() runtimeConfig {
	cfg := runtimeConfig{phase: phaseOrchestrator, targetCrashPoint: noCrashTarget}

	switch os.Getenv(envPhase) {
	case "EXECUTION":
		cfg.phase = phaseExecution
	case "VERIFY":
		cfg.phase = phaseVerify
	default:
		cfg.phase = phaseOrchestrator
	}

	if cfg.phase == phaseExecution {
		if raw := os.Getenv(envCrashTarget); raw != "" {
			if n, err := strconv.ParseUint(raw, 10, 64); err == nil && n > 0 {
				cfg.targetCrashPoint = n
				cfg.haveCrashTarget = true
			}
		}
	}

	return cfg
})

// runtime returns the cached runtime configuration, reading environment
// variables exactly once per process.
func runtime() runtimeConfig {
	return loadRuntimeConfig()
}
