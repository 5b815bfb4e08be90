// Package notification implements the Notifier port by publishing
// notification events to Kafka.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// KafkaNotifier implements the Notifier port on a Kafka topic. Messages are
// keyed by user so one user's notifications stay ordered.
type KafkaNotifier struct {
	client *kgo.Client
	topic  string
}

var _ ports.Notifier = &KafkaNotifier{}

// NewKafkaNotifier creates a notifier producing to the given topic.
func NewKafkaNotifier(brokers []string, topic string) (*KafkaNotifier, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProduceRequestTimeout(10*time.Second),
		kgo.ClientID("fulfillment"),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	return &KafkaNotifier{client: client, topic: topic}, nil
}

type notificationEvent struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

// Send publishes one notification event.
func (n *KafkaNotifier) Send(ctx context.Context, userID int64, text string) error {
	value, err := json.Marshal(notificationEvent{UserID: userID, Text: text})
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	record := &kgo.Record{
		Topic: n.topic,
		Key:   []byte(strconv.FormatInt(userID, 10)),
		Value: value,
	}

	if err := n.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

// Close shuts the underlying Kafka client down.
func (n *KafkaNotifier) Close() {
	n.client.Close()
}
