package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/osse101/DailyPoll_Go/internal/bootstrap"
	"github.com/osse101/DailyPoll_Go/internal/config"
	"github.com/osse101/DailyPoll_Go/internal/handler"
	"github.com/osse101/DailyPoll_Go/internal/scheduler"
	"github.com/osse101/DailyPoll_Go/internal/server"
	"github.com/osse101/DailyPoll_Go/internal/worker"
)

const (
	// shutdownTimeout bounds the whole graceful shutdown sequence
	shutdownTimeout = 30 * time.Second
	// scoringQueueSize leaves room for manual triggers next to the daily run
	scoringQueueSize = 16
)

// @title Daily Poll API
// @version 1.0
// @description Daily two-option poll with prediction scoring, streaks and a leaderboard.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment validation failed, continuing with defaults", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logger", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx := context.Background()

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		repos.Close()
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	handler.InitValidator()
	services := bootstrap.InitializeServices(cfg, repos, events.Bus)

	// One worker keeps scheduled and catch-up runs strictly sequential
	pool := worker.NewPool(1, scoringQueueSize)
	pool.Start()

	var scoringWorker *worker.DailyScoringWorker
	if cfg.ScoringWorkerEnabled {
		scoringWorker = worker.NewDailyScoringWorker(services.Scoring, pool, cfg.Location, cfg.ScoringOffset)
		scoringWorker.Start()
	}

	var sched *scheduler.Scheduler
	if cfg.ScoringRetryInterval > 0 {
		sched = scheduler.New(pool)
		sched.Schedule("scoring catch-up", cfg.ScoringRetryInterval,
			worker.CatchUpJob(services.Scoring, cfg.Location, nil))
	}

	srv := server.NewServer(bootstrap.ServerConfig(cfg), repos.Store, services, repos.CacheStats())

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:        srv,
		ScoringWorker: scoringWorker,
		Scheduler:     sched,
		Pool:          pool,
		Events:        events,
		Repositories:  repos,
	})
}
