package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/LavaJover/shvark-banking-sim/internal/domain"
	"github.com/segmentio/kafka-go"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	return k.writer.WriteMessages(context.Background(), km...)
}

func (k *DefaultKafkaPublisher) PublishLedgerEvent(topic string, event LedgerEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(topic, domain.Message{Key: []byte(event.IBAN), Value: v})
}

// BatchPublishLedgerEvents flushes a whole replay's event stream in one
// write. An unmarshalable event is skipped, not fatal: the ledger is
// the source of truth and the stream is observability only.
func (k *DefaultKafkaPublisher) BatchPublishLedgerEvents(topic string, events []LedgerEvent) error {
	if len(events) == 0 {
		return nil
	}

	if len(events) == 1 {
		return k.PublishLedgerEvent(topic, events[0])
	}

	messages := make([]kafka.Message, 0, len(events))
	timestamp := time.Now()

	for _, event := range events {
		msg, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal event for transaction %s: %v", event.TransactionID, err)
			continue
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(event.IBAN),
			Value: msg,
			Time:  timestamp,
			Topic: topic,
		})
	}

	if len(messages) == 0 {
		return fmt.Errorf("no valid messages to publish")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := k.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("failed to write batch messages: %w", err)
	}

	log.Printf("Successfully published %d ledger events to Kafka", len(messages))
	return nil
}

// NopPublisher keeps wiring uniform when the event stream is disabled
// in config.
type NopPublisher struct{}

func (NopPublisher) Publish(topic string, msgs ...domain.Message) error { return nil }

func (NopPublisher) PublishLedgerEvent(topic string, event LedgerEvent) error { return nil }

func (NopPublisher) BatchPublishLedgerEvents(topic string, events []LedgerEvent) error { return nil }
