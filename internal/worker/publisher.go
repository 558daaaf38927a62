package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/auth-service/pkg/helpers"
)

// Publisher sends one outbox event to the message broker.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload []byte) error
}

// brokerMessage is the wire envelope consumers receive.
type brokerMessage struct {
	EventType string          `json:"event_type"`
	Timestamp string          `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// LogPublisher is the broker stub: it logs the event instead of sending it.
type LogPublisher struct {
	Logger *logrus.Logger
}

func NewLogPublisher(logger *logrus.Logger) *LogPublisher {
	return &LogPublisher{Logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, eventType string, payload []byte) error {
	p.Logger.WithFields(logrus.Fields{
		"event_type": eventType,
		"payload":    string(payload),
	}).Info("event published")
	return nil
}

// QueuePublisher publishes events to a RabbitMQ queue.
type QueuePublisher struct {
	Pub *helpers.RabbitPublisher
}

func NewQueuePublisher(pub *helpers.RabbitPublisher) *QueuePublisher {
	return &QueuePublisher{Pub: pub}
}

func (p *QueuePublisher) Publish(ctx context.Context, eventType string, payload []byte) error {
	msg := brokerMessage{
		EventType: eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Data:      payload,
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.Pub.PublishRaw(ctx, b)
}
