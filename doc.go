// Package first is a deterministic crash-consistency testing framework for
// storage engines.
//
// A storage author marks "crash points" inside their code and writes a pair
// of closures — a workload and a verifier — via [Test]. FIRST then
// simulates, for every crash point reachable by the workload, a power-loss
// crash exactly at that point: it re-executes the test binary, kills the
// child by an uncatchable signal at the Nth crash point, restarts it against
// the same on-disk workspace in a verify phase, and invokes the verifier on
// whatever survived.
//
//	func TestAppendLogAtomicity(t *testing.T) {
//		first.Test(t).
//			Run(func(env *first.Env) {
//				path := env.Path("append.log")
//				f, _ := os.Create(path)
//				f.Write([]byte("RECORD1\n"))
//				first.CrashPoint("after_write_1")
//				f.Write([]byte("RECORD2\n"))
//				first.CrashPoint("after_write_2")
//				f.Sync()
//				first.CrashPoint("after_fsync")
//			}).
//			Verify(func(env *first.Env, crash *first.CrashInfo) {
//				// inspect env.Path("append.log") and assert prefix-consistency
//			}).
//			Execute()
//	}
//
// The outermost call to Execute runs under go test as usual: it detects it
// is not inside a re-exec'd Execution or Verify child and instead drives the
// supervisor loop, re-invoking the same test binary with FIRST_* environment
// variables set, reporting any invariant violation through t.
package first
