package event

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/DailyPoll_Go/internal/logger"
)

// retryEntry is an event waiting for its next publish attempt
type retryEntry struct {
	event     Event
	attempt   int
	nextRetry time.Time
	lastErr   error
}

// ResilientPublisher wraps a Publisher with retry and dead-letter handling.
// Failed publishes are queued and retried with exponential backoff by a single
// worker. Events that exhaust their retries are written to the dead-letter file.
type ResilientPublisher struct {
	bus        Publisher
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// NewResilientPublisher creates a ResilientPublisher and starts its retry worker
func NewResilientPublisher(bus Publisher, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	rp.wg.Add(1)
	go rp.retryWorker()

	return rp, nil
}

// PublishWithRetry publishes the event once and queues it for retry on failure.
// It never blocks on the retry path.
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := rp.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)

	rp.enqueue(retryEntry{
		event:     event,
		attempt:   1,
		nextRetry: time.Now().Add(CalculateRetryDelay(rp.retryDelay, 1)),
		lastErr:   err,
	})
}

// Publish implements Publisher. Delivery failures are handled asynchronously so
// the caller always gets nil.
func (rp *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	rp.PublishWithRetry(ctx, event)
	return nil
}

func (rp *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case <-rp.shutdown:
		slog.Warn(LogMsgEventDroppedShutdown, "event_type", entry.event.Type)
		rp.writeDeadLetter(entry)
		return
	default:
	}

	select {
	case rp.retryQueue <- entry:
	default:
		slog.Error(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		rp.writeDeadLetter(entry)
	}
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()

	for {
		select {
		case <-rp.shutdown:
			rp.drain()
			return
		case entry := <-rp.retryQueue:
			if wait := time.Until(entry.nextRetry); wait > 0 {
				timer := time.NewTimer(wait)
				select {
				case <-timer.C:
				case <-rp.shutdown:
					timer.Stop()
					rp.finalAttempt(entry)
					rp.drain()
					return
				}
			}
			rp.attempt(entry)
		}
	}
}

func (rp *ResilientPublisher) attempt(entry retryEntry) {
	err := rp.bus.Publish(context.Background(), entry.event)
	if err == nil {
		slog.Info(LogMsgEventRetrySucceeded,
			"event_type", entry.event.Type,
			"attempt", entry.attempt)
		return
	}

	entry.lastErr = err
	if entry.attempt >= rp.maxRetries {
		slog.Error(LogMsgEventRetryExhausted,
			"event_type", entry.event.Type,
			"attempts", entry.attempt+1,
			"error", err)
		rp.writeDeadLetter(entry)
		return
	}

	entry.attempt++
	entry.nextRetry = time.Now().Add(CalculateRetryDelay(rp.retryDelay, entry.attempt))
	slog.Warn(LogMsgEventRetryFailed,
		"event_type", entry.event.Type,
		"attempt", entry.attempt,
		"error", err)
	rp.enqueue(entry)
}

// finalAttempt makes one last publish during shutdown, dead-lettering on failure
func (rp *ResilientPublisher) finalAttempt(entry retryEntry) {
	if err := rp.bus.Publish(context.Background(), entry.event); err != nil {
		entry.lastErr = err
		rp.writeDeadLetter(entry)
	}
}

func (rp *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-rp.retryQueue:
			rp.finalAttempt(entry)
			drained++
		default:
			if drained > 0 {
				slog.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (rp *ResilientPublisher) writeDeadLetter(entry retryEntry) {
	if rp.deadLetter == nil {
		return
	}
	if err := rp.deadLetter.Write(entry.event, entry.attempt, entry.lastErr); err != nil {
		slog.Error(LogMsgDeadLetterWriteFailed, "event_type", entry.event.Type, "error", err)
	}
}

// Shutdown stops the retry worker after draining the queue. It returns the
// context error if the drain does not finish in time.
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	rp.shutdownOnce.Do(func() {
		close(rp.shutdown)
	})

	done := make(chan struct{})
	go func() {
		rp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if rp.deadLetter != nil {
			return rp.deadLetter.Close()
		}
		return nil
	case <-ctx.Done():
		slog.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
