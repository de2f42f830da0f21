package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const eventSource = "service-adoption"

// Publisher publishes pet lifecycle events.
type Publisher interface {
	PublishPetEvent(ctx context.Context, eventType string, evt PetEvent) error
}

// KafkaPublisher writes pet events to the pet.events topic.
type KafkaPublisher struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

// NewKafkaPublisher creates a publisher for the given brokers. The topic is
// created on first write when the broker allows it.
func NewKafkaPublisher(brokers []string, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafkago.Writer{
			Addr:                   kafkago.TCP(brokers...),
			Topic:                  TopicPetEvents,
			Balancer:               &kafkago.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
		logger: logger,
	}
}

// PublishPetEvent wraps the payload in a CloudEvent and writes it keyed by
// pet ID, so events for one pet stay ordered within a partition.
func (p *KafkaPublisher) PublishPetEvent(ctx context.Context, eventType string, evt PetEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	envelope := CloudEvent{
		ID:     uuid.NewString(),
		Source: eventSource,
		Type:   eventType,
		Time:   time.Now().UTC(),
		Data:   data,
	}
	value, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	p.logger.Debug("publishing pet event",
		zap.String("type", eventType),
		zap.String("pet_id", evt.PetID.String()),
	)
	return p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(evt.PetID.String()),
		Value: value,
	})
}

// Close closes the underlying Kafka writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
