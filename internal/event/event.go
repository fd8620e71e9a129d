package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/DailyPoll_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Poll event types
const (
	VoteAccepted     Type = domain.EventTypeVoteAccepted
	QuestionScored   Type = domain.EventTypeQuestionScored
	GradingCompleted Type = domain.EventTypeGradingCompleted
	QuestionCreated  Type = domain.EventTypeQuestionCreated
)

// AllTypes lists every event type the service publishes
var AllTypes = []Type{VoteAccepted, QuestionScored, GradingCompleted, QuestionCreated}

// NewVoteAcceptedEvent creates a vote.accepted event from a committed receipt
func NewVoteAcceptedEvent(receipt *domain.VoteReceipt, questionDate domain.Date) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    VoteAccepted,
		Payload: domain.VoteAcceptedPayload{
			VoteID:        receipt.Vote.ID.String(),
			VoterID:       receipt.Vote.VoterID,
			QuestionID:    receipt.Vote.QuestionID.String(),
			QuestionDate:  questionDate.String(),
			Choice:        receipt.Vote.Choice,
			Prediction:    receipt.Vote.Prediction,
			CurrentStreak: receipt.Streak.CurrentStreak,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewQuestionScoredEvent creates a question.scored event
func NewQuestionScoredEvent(q *domain.Question, tally domain.Tally) Event {
	var winner domain.Option
	if q.Winner != nil {
		winner = *q.Winner
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestionScored,
		Payload: domain.QuestionScoredPayload{
			QuestionID:   q.ID.String(),
			QuestionDate: q.Date.String(),
			Winner:       winner,
			VotesA:       tally.A,
			VotesB:       tally.B,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// NewGradingCompletedEvent creates a grading.completed event. Partial runs carry
// the ids of the votes left ungraded.
func NewGradingCompletedEvent(res *domain.GradeResult) Event {
	ungraded := make([]string, 0, len(res.Ungraded))
	for _, id := range res.Ungraded {
		ungraded = append(ungraded, id.String())
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    GradingCompleted,
		Payload: domain.GradingCompletedPayload{
			QuestionID: res.QuestionID.String(),
			Graded:     res.Graded,
			Correct:    res.Correct,
			Incorrect:  res.Incorrect,
			Ungraded:   ungraded,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewQuestionCreatedEvent creates a question.created event
func NewQuestionCreatedEvent(q *domain.Question) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestionCreated,
		Payload: domain.QuestionCreatedPayload{
			QuestionID:   q.ID.String(),
			QuestionDate: q.Date.String(),
			Timestamp:    time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for publishing and subscribing to events
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously in
// subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// NopPublisher discards every event
type NopPublisher struct{}

// Publish implements Publisher
func (NopPublisher) Publish(context.Context, Event) error { return nil }
