package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type EventType string

const (
	EventTypeUserRegistered EventType = "user_registered"
	EventTypeUserDeleted    EventType = "user_deleted"
	EventTypeSongAdded      EventType = "song_added"
	EventTypeSongDeleted    EventType = "song_deleted"
)

type Event struct {
	Type      EventType       `json:"type"`
	UserID    string          `json:"user_id"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// NewEvent builds an event with the payload marshalled in place.
func NewEvent(eventType EventType, userID string, payload any) (Event, error) {
	event := Event{
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
	}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return Event{}, fmt.Errorf("marshal event payload: %w", err)
		}
		event.Payload = raw
	}

	return event, nil
}

// KafkaPublisher writes library activity events to a single topic. This
// service only produces; consumers live elsewhere.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaPublisher{
		writer: writer,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(uuid.New().String()),
		Value: eventJSON,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}
	return nil
}

// Event payload types
type SongAddedPayload struct {
	SongID uint   `json:"song_id"`
	Name   string `json:"name"`
	Artist string `json:"artist,omitempty"`
}

type SongDeletedPayload struct {
	SongID uint `json:"song_id"`
}

type UserDeletedPayload struct {
	Username string `json:"username"`
}
