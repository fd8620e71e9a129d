package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/DailyPoll_Go/internal/config"
	"github.com/osse101/DailyPoll_Go/internal/event"
	"github.com/osse101/DailyPoll_Go/internal/metrics"
)

// EventSystem is the in-process bus plus the optional Kafka leg behind it
type EventSystem struct {
	Bus *event.MemoryBus
	// Publisher is nil when no Kafka brokers are configured
	Publisher *event.ResilientPublisher
	sink      *event.KafkaSink
}

// InitializeEventSystem creates the event bus and registers the metrics
// collector on it. When Kafka brokers are configured, every event is also
// forwarded through a resilient publisher with exponential backoff retry and
// a dead-letter file.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	es := &EventSystem{Bus: event.NewMemoryBus()}

	metrics.NewEventMetricsCollector().Register(es.Bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if !cfg.EventsEnabled() {
		slog.Info(LogMsgEventSinkDisabled)
		return es, nil
	}

	// Zero values come from configs built without Load
	maxRetries := cfg.EventMaxRetries
	if maxRetries == 0 {
		maxRetries = config.DefaultEventMaxRetries
	}

	retryDelay := cfg.EventRetryDelay
	if retryDelay == 0 {
		retryDelay = config.DefaultEventRetryDelay
	}

	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = config.DefaultEventDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	es.sink = event.NewKafkaSink(event.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
	rp, err := event.NewResilientPublisher(es.sink, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		_ = es.sink.Close()
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}
	es.Publisher = rp
	event.Forward(es.Bus, rp)

	slog.Info(LogMsgEventSystemInitialized,
		"brokers", cfg.KafkaBrokers,
		"topic", cfg.KafkaTopic,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return es, nil
}

// Close flushes the retry queue and closes the Kafka writer. Errors are logged.
func (es *EventSystem) Close(ctx context.Context) {
	if es.Publisher == nil {
		return
	}
	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := es.Publisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}
	if err := es.sink.Close(); err != nil {
		slog.Error(LogMsgEventSinkCloseFailed, "error", err)
	}
}
