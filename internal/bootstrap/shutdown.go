package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is a component that drains in-flight work on shutdown
type Stopper interface {
	Stop(ctx context.Context) error
}

// GracefulShutdown stops components in order within ctx's deadline. A
// component that fails to stop is logged and the rest are still stopped.
func GracefulShutdown(ctx context.Context, components ...Stopper) {
	slog.Info(LogMsgShuttingDown, "components", len(components))

	for i, c := range components {
		if c == nil {
			continue
		}
		if err := c.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "component", i, "error", err)
			continue
		}
		slog.Debug(LogMsgComponentStopped, "component", i)
	}

	slog.Info(LogMsgShutdownComplete)
}
