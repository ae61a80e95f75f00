package first

// CrashInfo describes the crash that produced the workspace a Verify
// closure is inspecting.
//
// PointID is stable for a given test and crash schedule; it may change if
// crash points are added to or removed from the workload. Label is exactly
// the string passed to the triggering CrashPoint call and is not required to
// be unique.
type CrashInfo struct {
	PointID uint64
	Label   string
}
