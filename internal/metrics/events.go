package metrics

import (
	"context"

	"github.com/osse101/DailyPoll_Go/internal/domain"
	"github.com/osse101/DailyPoll_Go/internal/event"
	"github.com/osse101/DailyPoll_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all poll events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.GradingCompleted:
		payload, err := event.PayloadAs[domain.GradingCompletedPayload](evt, event.GradingCompleted)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type, "error", err)
			return nil
		}
		GradingVotes.WithLabelValues(GradingResultCorrect).Add(float64(payload.Correct))
		GradingVotes.WithLabelValues(GradingResultIncorrect).Add(float64(payload.Incorrect))
		GradingVotes.WithLabelValues(GradingResultUngraded).Add(float64(len(payload.Ungraded)))
	case event.VoteAccepted:
		payload, err := event.PayloadAs[domain.VoteAcceptedPayload](evt, event.VoteAccepted)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type, "error", err)
			return nil
		}
		StreakLength.Observe(float64(payload.CurrentStreak))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
