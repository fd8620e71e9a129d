package worker

import "time"

// Error messages
const (
	ErrMsgPoolStopped = "worker pool stopped"
)

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
)

// Log messages - daily scoring worker
const (
	LogMsgScoringScheduled     = "Daily scoring scheduled"
	LogMsgScoringStarting      = "Daily scoring starting"
	LogMsgScoringCompleted     = "Daily scoring completed"
	LogMsgScoringAlreadyDone   = "Daily scoring skipped, question already scored"
	LogMsgScoringNothingToDo   = "Daily scoring found nothing to score"
	LogMsgScoringFailed        = "Daily scoring failed"
	LogMsgScoringEnqueueFailed = "Failed to enqueue daily scoring"
	LogMsgScoringEarlyWakeup   = "Daily scoring timer fired early, rescheduling"
	LogMsgShuttingDown         = "Shutting down %s"
	LogMsgShutdownComplete     = "%s shutdown complete"
	LogMsgShutdownTimeout      = "%s shutdown timeout"
)

// Worker names used in lifecycle logs
const (
	DailyScoringWorkerName = "daily scoring worker"
)

// DefaultEnqueueTimeout bounds how long a timer callback waits on a full pool
const DefaultEnqueueTimeout = 30 * time.Second

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
