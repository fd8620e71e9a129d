package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyPoll_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestNewVoteAcceptedEvent_Payload(t *testing.T) {
	receipt := &domain.VoteReceipt{
		Vote: domain.Vote{
			ID:         uuid.New(),
			VoterID:    "voter-1",
			QuestionID: uuid.New(),
			Choice:     domain.OptionA,
			Prediction: domain.OptionB,
		},
		Streak: domain.StreakState{VoterID: "voter-1", CurrentStreak: 4},
	}

	evt := NewVoteAcceptedEvent(receipt, domain.NewDate(2024, time.January, 2))

	assert.Equal(t, VoteAccepted, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)

	payload, err := DecodePayload[domain.VoteAcceptedPayload](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "voter-1", payload.VoterID)
	assert.Equal(t, 4, payload.CurrentStreak)
	assert.Equal(t, "2024-01-02", payload.QuestionDate)
	assert.Equal(t, receipt.Vote.QuestionID.String(), payload.QuestionID)
}

func TestNewGradingCompletedEvent_CarriesUngraded(t *testing.T) {
	missing := uuid.New()
	evt := NewGradingCompletedEvent(&domain.GradeResult{
		QuestionID: uuid.New(),
		Graded:     1,
		Ungraded:   []uuid.UUID{missing},
	})

	payload, err := DecodePayload[domain.GradingCompletedPayload](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, []string{missing.String()}, payload.Ungraded)
}

func TestDecodePayload_FromJSONMap(t *testing.T) {
	raw := map[string]interface{}{"question_id": "q-1", "winner": "B", "votes_a": 1.0, "votes_b": 2.0}

	payload, err := DecodePayload[domain.QuestionScoredPayload](raw)
	require.NoError(t, err)
	assert.Equal(t, "q-1", payload.QuestionID)
	assert.Equal(t, domain.OptionB, payload.Winner)
	assert.Equal(t, 2, payload.VotesB)
}

func TestGetMetadataValue(t *testing.T) {
	evt := Event{Metadata: map[string]interface{}{"source": "scoring"}}
	assert.Equal(t, "scoring", evt.GetMetadataValue("source"))
	assert.Nil(t, Event{}.GetMetadataValue("source"))
}

func TestDecodePayload_RawJSONAndPointer(t *testing.T) {
	raw := json.RawMessage(`{"question_id":"q-2","winner":"A","votes_a":3,"votes_b":3}`)

	fromRaw, err := DecodePayload[domain.QuestionScoredPayload](raw)
	require.NoError(t, err)
	assert.Equal(t, domain.OptionA, fromRaw.Winner)
	assert.Equal(t, 3, fromRaw.VotesA)

	fromBytes, err := DecodePayload[domain.QuestionScoredPayload]([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, fromRaw, fromBytes)

	fromPtr, err := DecodePayload[domain.QuestionScoredPayload](&fromRaw)
	require.NoError(t, err)
	assert.Equal(t, fromRaw, fromPtr)

	var nilPtr *domain.QuestionScoredPayload
	_, err = DecodePayload[domain.QuestionScoredPayload](nilPtr)
	assert.Error(t, err)
}

func TestPayloadAs_ChecksType(t *testing.T) {
	evt := NewGradingCompletedEvent(&domain.GradeResult{QuestionID: uuid.New(), Graded: 2})

	payload, err := PayloadAs[domain.GradingCompletedPayload](evt, GradingCompleted)
	require.NoError(t, err)
	assert.Equal(t, 2, payload.Graded)

	_, err = PayloadAs[domain.VoteAcceptedPayload](evt, VoteAccepted)
	assert.ErrorIs(t, err, ErrUnexpectedType)
}
