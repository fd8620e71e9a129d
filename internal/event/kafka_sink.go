package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/osse101/DailyPoll_Go/internal/domain"
)

// MessageWriter is the subset of *kafka.Writer used by the sink
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink forwards events to a Kafka topic. Messages are keyed by question id
// so every event for one question lands on the same partition in order.
type KafkaSink struct {
	writer MessageWriter
}

// NewKafkaWriter builds a writer that hashes keys across partitions, waits for
// all in-sync replicas and compresses JSON payloads with snappy.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: KafkaBatchTimeout,
		MaxAttempts:  KafkaMaxAttempts,
		Compression:  kafka.Snappy,
	}
}

// NewKafkaSink creates a sink over the given writer
func NewKafkaSink(writer MessageWriter) *KafkaSink {
	return &KafkaSink{writer: writer}
}

// Publish implements Publisher by writing one message per event
func (s *KafkaSink) Publish(ctx context.Context, event Event) error {
	msg, err := NewKafkaMessage(event)
	if err != nil {
		return err
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgKafkaWrite, err)
	}
	return nil
}

// Close closes the underlying writer
func (s *KafkaSink) Close() error {
	if err := s.writer.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgKafkaClose, err)
	}
	return nil
}

// NewKafkaMessage encodes an event as a Kafka message
func NewKafkaMessage(event Event) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("%s: %w", ErrMsgKafkaMarshal, err)
	}
	return kafka.Message{
		Key:   []byte(PartitionKey(event)),
		Value: value,
		Headers: []kafka.Header{
			{Key: KafkaHeaderType, Value: []byte(event.Type)},
			{Key: KafkaHeaderVer, Value: []byte(event.Version)},
		},
	}, nil
}

// PartitionKey returns the question id carried by the payload, or the event
// type when the payload has none
func PartitionKey(event Event) string {
	switch p := event.Payload.(type) {
	case domain.VoteAcceptedPayload:
		return p.QuestionID
	case domain.QuestionScoredPayload:
		return p.QuestionID
	case domain.GradingCompletedPayload:
		return p.QuestionID
	case domain.QuestionCreatedPayload:
		return p.QuestionID
	}
	return string(event.Type)
}

// Forward subscribes publisher to every poll event type on bus. The handler
// always returns nil; delivery failures stay in the publisher's retry queue.
func Forward(bus Bus, publisher *ResilientPublisher) {
	for _, t := range AllTypes {
		bus.Subscribe(t, func(ctx context.Context, e Event) error {
			publisher.PublishWithRetry(ctx, e)
			return nil
		})
	}
}
