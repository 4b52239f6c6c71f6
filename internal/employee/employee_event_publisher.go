package employee

import (
	"context"
	"encoding/json"

	"ems-console/internal/events"

	kafkago "github.com/segmentio/kafka-go"
)

type EventPublisher interface {
	PublishAdminAction(ctx context.Context, event events.AdminActionEvent) error
}

type noopEventPublisher struct{}

// NewNoopEventPublisher is used when no broker is configured; mutations
// still succeed, only the activity trail is skipped.
func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishAdminAction(context.Context, events.AdminActionEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer *kafkago.Writer
}

func NewKafkaEventPublisher(writer *kafkago.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishAdminAction(
	ctx context.Context,
	event events.AdminActionEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: events.AdminActivityTopic,
		Key:   []byte(event.EmployeeID),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	})
}
