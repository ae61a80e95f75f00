package orchestrator

import (
	"os"
	"strconv"

	"github.com/danshapiro/first/internal/protocol"
)

// phaseExecutionEnv builds the environment for an Execution-phase child
// targeting the given 1-indexed crash point. It starts from the
// Orchestrator's own environment, so FIRST_SEED (and anything else already
// set in the parent's environment) is forwarded unchanged; only the
// protocol variables the child needs are appended.
func phaseExecutionEnv(target uint64, leaf string) []string {
	return append(os.Environ(),
		protocol.EnvPhase+"=EXECUTION",
		protocol.EnvCrashTarget+"="+strconv.FormatUint(target, 10),
		protocol.EnvWorkDir+"="+leaf,
	)
}

// phaseVerifyEnv builds the environment for a Verify-phase child inspecting
// the workspace an Execution child left behind after hitting rec.
func phaseVerifyEnv(leaf string, rec protocol.CrashRecord) []string {
	return append(os.Environ(),
		protocol.EnvPhase+"=VERIFY",
		protocol.EnvWorkDir+"="+leaf,
		protocol.EnvCrashPointID+"="+strconv.FormatUint(rec.PointID, 10),
		protocol.EnvCrashLabel+"="+rec.Label,
	)
}
