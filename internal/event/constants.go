package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Retry settings
const (
	// RetryQueueBufferSize bounds events waiting for a retry; beyond it they are dead-lettered
	RetryQueueBufferSize = 1000

	// RetryMaxDelay caps the backoff so a high EVENT_MAX_RETRIES does not park events for hours
	RetryMaxDelay = time.Minute
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644

	// DeadLetterDirPermissions is the mode used when creating the dead-letter directory
	DeadLetterDirPermissions = 0755

	// DeadLetterMaxLineBytes bounds one entry when reading a dead-letter file back
	DeadLetterMaxLineBytes = 1 << 20
)

// Log message constants
const (
	// Log messages for event publishing
	LogMsgEventPublishFailed     = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull         = "Retry queue full, event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed  = "Failed to write to dead letter"
	LogMsgEventRetryExhausted    = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed       = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded    = "Event retry succeeded"
	LogMsgEventDroppedShutdown   = "Event dropped during shutdown"
	LogMsgQueueDrainedShutdown   = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout        = "Resilient publisher shutdown timed out"
	LogMsgEventDeadLettered      = "Event dead-lettered"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"

	// Kafka sink messages
	ErrMsgKafkaMarshal     = "failed to marshal event"
	ErrMsgKafkaWrite       = "failed to write message to kafka"
	ErrMsgKafkaClose       = "failed to close kafka writer"
)

// Kafka writer settings
const (
	KafkaBatchTimeout = 10 * time.Millisecond
	KafkaMaxAttempts  = 5
	KafkaHeaderType   = "event_type"
	KafkaHeaderVer    = "event_version"
)

// CalculateRetryDelay doubles baseDelay per attempt (attempt 1 waits
// baseDelay) and caps the result at RetryMaxDelay.
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= RetryMaxDelay {
			return RetryMaxDelay
		}
	}
	return min(delay, RetryMaxDelay)
}
