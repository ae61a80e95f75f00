package protocol

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanCrashRecord_Found(t *testing.T) {
	input := "some log noise\n" +
		`{"event":"crash","point_id":3,"label":"after_write_2","seed":"42","work_dir":"/tmp/x"}` + "\n" +
		"trailing noise\n"

	got, ok := ScanCrashRecord(strings.NewReader(input))
	if !ok {
		t.Fatalf("expected a crash record to be found")
	}

	want := CrashRecord{Event: "crash", PointID: 3, Label: "after_write_2", Seed: "42", WorkDir: "/tmp/x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestScanCrashRecord_NotFound(t *testing.T) {
	_, ok := ScanCrashRecord(strings.NewReader("nothing interesting here\nor here\n"))
	if ok {
		t.Fatalf("expected no crash record to be found")
	}
}

func TestScanCrashRecord_IgnoresMalformedPrefixedLine(t *testing.T) {
	input := `{"event":"crash",not valid json` + "\n" +
		`{"event":"crash","point_id":1,"label":"x"}` + "\n"

	got, ok := ScanCrashRecord(strings.NewReader(input))
	if !ok {
		t.Fatalf("expected the second, well-formed line to be found")
	}
	if got.PointID != 1 || got.Label != "x" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestScanCrashRecord_EmptyInput(t *testing.T) {
	_, ok := ScanCrashRecord(strings.NewReader(""))
	if ok {
		t.Fatalf("expected no crash record from empty input")
	}
}
