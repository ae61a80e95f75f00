// Package workspace allocates the per-run base directory and per-iteration
// leaf directories the Orchestrator hands to re-exec'd children via
// FIRST_WORK_DIR.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// baseDirName is the shared namespace parent under the system temp
// directory. It is shared across invocations only as a namespace parent —
// no file under it is written by two processes, since every AllocateBase
// call mints a fresh (pid, uuid) pair.
const baseDirName = "first"

// AllocateBase returns a path of the form
// <parent>/first/first-<pid>-<uuid> unique across every concurrent
// invocation of any test binary on the host. parent overrides the system
// temp directory when non-empty, so a first.jsonc base_dir setting can
// relocate every workspace this process allocates. The directory is not
// created eagerly; callers create it via Leaf.
func AllocateBase(parent string) (string, error) {
	id, err := uuidV4()
	if err != nil {
		return "", fmt.Errorf("workspace: generate run id: %w", err)
	}
	if parent == "" {
		parent = os.TempDir()
	}
	dirName := fmt.Sprintf("first-%d-%s", os.Getpid(), id)
	return filepath.Join(parent, baseDirName, dirName), nil
}

// Leaf returns the per-iteration workspace root for the given crash target,
// <base>/run_<target>. The Orchestrator creates it before each Execution
// spawn and removes it after a passing verification unless artifact
// retention is requested.
func Leaf(base string, target uint64) string {
	return filepath.Join(base, "run_"+strconv.FormatUint(target, 10))
}
