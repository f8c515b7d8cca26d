package events

import (
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"

	"github.com/ProjectPilot-2025/portfolio-service/internal/config"
)

// NewKafkaPublisher publishes notification events to Kafka. Used when
// KAFKA_BROKERS is configured; otherwise the in-process gochannel publisher
// is used instead.
func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) (EventPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers configured")
	}

	publisher, err := kafka.NewPublisher(
		kafka.PublisherConfig{
			Brokers:   cfg.Brokers,
			Marshaler: kafka.DefaultMarshaler{},
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}

	return NewWatermillPublisher(publisher, cfg.Topic, logger), nil
}
