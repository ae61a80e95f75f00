package main

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/danshapiro/first/internal/leafstate"
)

// leafEntry pairs a discovered leaf workspace directory with whatever
// outcome record FIRST left inside it.
type leafEntry struct {
	dir       string
	record    leafstate.Record
	hasRecord bool
}

// discoverLeaves walks baseDir (<tmp>/first by default) for
// first-<pid>-<uuid>/run_<n> directories and loads each one's leafstate
// record, if any. labelGlob filters on the recorded crash label using
// doublestar's glob syntax ("*" matches everything, including leaves with
// no record).
func discoverLeaves(baseDir, labelGlob string) ([]leafEntry, error) {
	runDirs, err := filepath.Glob(filepath.Join(baseDir, "first-*-*", "run_*"))
	if err != nil {
		return nil, err
	}

	var out []leafEntry
	for _, dir := range runDirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		rec, err := leafstate.Load(dir)
		entry := leafEntry{dir: dir, record: rec, hasRecord: err == nil}

		if labelGlob != "*" {
			if !entry.hasRecord {
				continue
			}
			matched, err := doublestar.Match(labelGlob, entry.record.CrashLabel)
			if err != nil || !matched {
				continue
			}
		}

		out = append(out, entry)
	}
	return out, nil
}
