// Package leafstate records the outcome of one crash/restart/verify
// iteration alongside the leaf workspace it describes, so a preserved
// (FIRST_KEEP_ARTIFACTS) leaf directory remains self-describing after the
// Orchestrator process that produced it has exited. cmd/firstdoctor reads
// these records to let an operator browse and replay past failures.
package leafstate

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
)

// fileName is the record's name within a leaf workspace directory.
const fileName = "first-state.json"

// Status classifies how a leaf workspace's iteration ended.
type Status string

const (
	StatusCrashed  Status = "crashed"
	StatusVerified Status = "verified"
	StatusFailed   Status = "failed"
)

// Record is the durable, per-leaf-workspace outcome summary.
type Record struct {
	Timestamp       time.Time `json:"timestamp"`
	TestName        string    `json:"test_name"`
	CrashTarget     uint64    `json:"crash_target"`
	CrashPointID    uint64    `json:"crash_point_id,omitempty"`
	CrashLabel      string    `json:"crash_label,omitempty"`
	Status          Status    `json:"status"`
	FailureReason   string    `json:"failure_reason,omitempty"`
	OrchestratorPID int       `json:"orchestrator_pid"`
}

// Save writes rec to leafDir atomically: a reader (cmd/firstdoctor running
// concurrently with a live Orchestrator) never observes a partially written
// file.
func Save(leafDir string, rec Record) error {
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return atomic.WriteFile(filepath.Join(leafDir, fileName), bytes.NewReader(b))
}

// Load reads the record left in leafDir, if any.
func Load(leafDir string) (Record, error) {
	b, err := os.ReadFile(filepath.Join(leafDir, fileName))
	if err != nil {
		return Record{}, err
	}
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}
