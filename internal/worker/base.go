package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/DailyPoll_Go/internal/logger"
)

// BaseWorker provides the timer and shutdown bookkeeping shared by scheduled workers
type BaseWorker struct {
	mu           sync.Mutex
	timer        *time.Timer
	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

func (w *BaseWorker) init() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

func (w *BaseWorker) stopped() bool {
	select {
	case <-w.shutdown:
		return true
	default:
		return false
	}
}

// schedule replaces the pending timer with one that runs fn after d.
// fn runs tracked by the wait group and is skipped after shutdown.
func (w *BaseWorker) schedule(d time.Duration, fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped() {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(d, func() {
		// Add under mu so it cannot race the Wait in shutdownInternal
		w.mu.Lock()
		if w.stopped() {
			w.mu.Unlock()
			return
		}
		w.wg.Add(1)
		w.mu.Unlock()

		defer w.wg.Done()
		fn()
	})
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info(fmt.Sprintf(LogMsgShuttingDown, workerName))

	w.mu.Lock()
	w.shutdownOnce.Do(func() { close(w.shutdown) })
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	// Wait for in-flight executions
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(fmt.Sprintf(LogMsgShutdownComplete, workerName))
		return nil
	case <-ctx.Done():
		log.Warn(fmt.Sprintf(LogMsgShutdownTimeout, workerName))
		return ctx.Err()
	}
}
