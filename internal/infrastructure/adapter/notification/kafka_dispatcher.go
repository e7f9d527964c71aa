package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// KafkaDispatcher publishes templated emails to a topic consumed by the mail service
type KafkaDispatcher struct {
	producer sarama.SyncProducer
	topic    string
	logger   coreport.Logger
}

// NewSaramaConfig returns the producer settings used for email messages
func NewSaramaConfig(clientID string) *sarama.Config {
	config := sarama.NewConfig()
	config.ClientID = clientID
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1
	return config
}

// NewKafkaDispatcher connects a synchronous producer to the brokers
func NewKafkaDispatcher(brokers []string, topic, clientID string, logger coreport.Logger) (*KafkaDispatcher, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewSaramaConfig(clientID))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Info("Kafka dispatcher initialized", map[string]any{
		"brokers": brokers,
		"topic":   topic,
	})
	return NewKafkaDispatcherWithProducer(producer, topic, logger), nil
}

// NewKafkaDispatcherWithProducer wraps an existing producer
func NewKafkaDispatcherWithProducer(producer sarama.SyncProducer, topic string, logger coreport.Logger) *KafkaDispatcher {
	return &KafkaDispatcher{
		producer: producer,
		topic:    topic,
		logger:   logger.With(map[string]any{"component": "kafka_dispatcher"}),
	}
}

// SendTemplateEmail publishes the message keyed by event id so retries land on the same partition
func (d *KafkaDispatcher) SendTemplateEmail(ctx context.Context, message entity.EmailMessage) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal email message: %w", err)
	}

	headers := []sarama.RecordHeader{
		{Key: []byte("template_key"), Value: []byte(message.TemplateKey)},
		{Key: []byte("event_id"), Value: []byte(message.EventID)},
	}
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for key, value := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(key), Value: []byte(value)})
	}

	partition, offset, err := d.producer.SendMessage(&sarama.ProducerMessage{
		Topic:   d.topic,
		Key:     sarama.StringEncoder(message.EventID),
		Value:   sarama.ByteEncoder(payload),
		Headers: headers,
	})
	if err != nil {
		d.logger.Error("Failed to publish email message", map[string]any{
			"event_id":     message.EventID,
			"template_key": message.TemplateKey,
			"error":        err.Error(),
		})
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	d.logger.Debug("Email message published", map[string]any{
		"event_id":     message.EventID,
		"template_key": message.TemplateKey,
		"partition":    partition,
		"offset":       offset,
	})
	return nil
}

// Close closes the producer
func (d *KafkaDispatcher) Close() error {
	if d.producer != nil {
		return d.producer.Close()
	}
	return nil
}
