package config

import "time"

// Store backends
const (
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "daily-poll"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultScoringOffset = 5 * time.Minute

	DefaultQuestionCacheSize = 64
	DefaultQuestionCacheTTL  = 10 * time.Minute

	DefaultKafkaTopic          = "daily-poll.events"
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
)
