package worker

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/logger"
	"github.com/osse101/DailyPoll_Go/internal/scoring"
)

// DailyScoringWorker scores yesterday's question shortly after midnight in
// the poll time zone. Runs go through the pool, so with a one-worker pool a
// manual trigger and the scheduled run never overlap.
type DailyScoringWorker struct {
	BaseWorker
	scorer scoring.Service
	pool   *Pool
	loc    *time.Location
	offset time.Duration
	now    func() time.Time
	next   time.Time
}

// NewDailyScoringWorker creates a worker that fires offset past each midnight in loc
func NewDailyScoringWorker(scorer scoring.Service, pool *Pool, loc *time.Location, offset time.Duration) *DailyScoringWorker {
	if loc == nil {
		loc = time.UTC
	}
	return &DailyScoringWorker{
		scorer: scorer,
		pool:   pool,
		loc:    loc,
		offset: offset,
		now:    time.Now,
	}
}

// Start schedules the first run
func (w *DailyScoringWorker) Start() {
	w.init()
	w.scheduleNext()
}

func (w *DailyScoringWorker) scheduleNext() {
	now := w.now()
	next := NextRunAt(now, w.loc, w.offset)

	w.mu.Lock()
	w.next = next
	w.mu.Unlock()

	w.schedule(next.Sub(now), w.fire)
	logger.FromContext(context.Background()).Info(LogMsgScoringScheduled, "next_run_at", next)
}

func (w *DailyScoringWorker) fire() {
	w.mu.Lock()
	next := w.next
	w.mu.Unlock()

	// Timers may wake slightly early; never score before the boundary
	if now := w.now(); now.Before(next) {
		logger.FromContext(context.Background()).Debug(LogMsgScoringEarlyWakeup, "remaining", next.Sub(now))
		w.schedule(next.Sub(now), w.fire)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultEnqueueTimeout)
	defer cancel()
	if err := w.Trigger(ctx, scoring.ScoringTarget(w.now(), w.loc)); err != nil {
		logger.FromContext(ctx).Error(LogMsgScoringEnqueueFailed, "error", err)
	}

	w.scheduleNext()
}

// Trigger queues a scoring run for date
func (w *DailyScoringWorker) Trigger(ctx context.Context, date domain.Date) error {
	return w.pool.Enqueue(ctx, &ScoringJob{Scorer: w.scorer, Date: date})
}

// Shutdown cancels the pending timer and waits for a firing callback to return.
// Stop the pool afterwards to wait for the run itself.
func (w *DailyScoringWorker) Shutdown(ctx context.Context) error {
	w.init()
	return w.shutdownInternal(ctx, DailyScoringWorkerName)
}

// NextRunAt returns the first instant after now that is offset past a
// midnight in loc
func NextRunAt(now time.Time, loc *time.Location, offset time.Duration) time.Time {
	local := now.In(loc)
	run := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).Add(offset)
	if !run.After(now) {
		run = time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc).Add(offset)
	}
	return run
}

// CatchUpJob re-runs scoring for the current target date each time it is
// processed. Completed dates are no-ops; a run left partial is resumed.
func CatchUpJob(scorer scoring.Service, loc *time.Location, now func() time.Time) Job {
	if now == nil {
		now = time.Now
	}
	return JobFunc(func(ctx context.Context) error {
		job := &ScoringJob{Scorer: scorer, Date: scoring.ScoringTarget(now(), loc)}
		return job.Process(ctx)
	})
}

// ScoringJob scores one date. Authoring gaps and repeat runs are expected
// outcomes and are logged rather than failed.
type ScoringJob struct {
	Scorer scoring.Service
	Date   domain.Date
}

func (j *ScoringJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx).With(logger.AttrKeyDate, j.Date)
	log.Info(LogMsgScoringStarting)

	res, err := j.Scorer.Score(ctx, j.Date)
	switch {
	case err == nil:
		log.Info(LogMsgScoringCompleted,
			logger.AttrKeyQuestionID, res.QuestionID,
			"winner", res.Winner,
			"votes_a", res.Tally.A,
			"votes_b", res.Tally.B)
		return nil
	case errors.Is(err, domain.ErrPartialGrading):
		log.Error(LogMsgScoringFailed, "error", err)
		return err
	case errors.Is(err, domain.ErrAlreadyScored):
		log.Info(LogMsgScoringAlreadyDone)
		return nil
	case errors.Is(err, domain.ErrQuestionNotFound), errors.Is(err, domain.ErrNoVotesRecorded):
		log.Warn(LogMsgScoringNothingToDo, "reason", err)
		return nil
	default:
		log.Error(LogMsgScoringFailed, "error", err)
		return err
	}
}
