package first

import (
	"path/filepath"
	"testing"
)

func TestEnvPath(t *testing.T) {
	e := newEnv("/tmp/first/run_1")
	got := e.Path("wal/data.log")
	want := filepath.Join("/tmp/first/run_1", "wal/data.log")
	if got != want {
		t.Fatalf("Path() = %q, want %q", got, want)
	}
}

func TestEnvPathRejectsAbsolute(t *testing.T) {
	e := newEnv("/tmp/first/run_1")

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Path to panic on an absolute argument")
		}
	}()
	e.Path("/etc/passwd")
}

func TestEnvRoot(t *testing.T) {
	e := newEnv("/tmp/first/run_2")
	if e.Root() != "/tmp/first/run_2" {
		t.Fatalf("Root() = %q, want /tmp/first/run_2", e.Root())
	}
}
