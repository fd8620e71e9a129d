// Package scheduler enqueues jobs onto a worker pool at a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/DailyPoll_Go/internal/worker"
)

// EnqueueTimeout bounds how long a tick waits for room in the pool queue
const EnqueueTimeout = 5 * time.Second

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. The first run happens
// one interval after the call.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.enqueue(name, job)
			case <-s.quit:
				return
			}
		}
	}()
}

// enqueue skips the tick when the queue stays full, the next tick retries
func (s *Scheduler) enqueue(name string, job worker.Job) {
	ctx, cancel := context.WithTimeout(context.Background(), EnqueueTimeout)
	defer cancel()

	go func() {
		select {
		case <-s.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := s.workerPool.Enqueue(ctx, job); err != nil {
		slog.Warn("Scheduled job skipped", "job", name, "error", err)
	}
}

// Stop stops all scheduled jobs. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
