package orchestrator

import (
	"context"
	"os/signal"
	"syscall"
)

// signalCancelContext returns a context cancelled when the current process
// receives SIGINT or SIGTERM, so exec.CommandContext terminates any
// outstanding re-exec'd child rather than leaving it running after the
// Orchestrator itself has been asked to stop.
func signalCancelContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
