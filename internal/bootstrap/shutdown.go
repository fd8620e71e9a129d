package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/DailyPoll_Go/internal/scheduler"
	"github.com/osse101/DailyPoll_Go/internal/server"
	"github.com/osse101/DailyPoll_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Any field except Server may be nil.
type ShutdownComponents struct {
	Server        *server.Server
	ScoringWorker *worker.DailyScoringWorker
	Scheduler     *scheduler.Scheduler
	Pool          *worker.Pool
	Events        *EventSystem
	Repositories  *Repositories
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Timers and the worker pool (let an in-flight scoring run finish)
// 3. Event publisher (flush pending events to Kafka)
// 4. Store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.ScoringWorker != nil {
		if err := components.ScoringWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgScoringWorkerFailed, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.Pool != nil {
		components.Pool.Stop()
	}

	if components.Events != nil {
		components.Events.Close(ctx)
	}

	if components.Repositories != nil {
		components.Repositories.Close()
	}

	slog.Info(LogMsgServerStopped)
}
