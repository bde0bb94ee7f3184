package events

import (
	"context"

	"backlog/config"
	"backlog/infras/kafka"
	"backlog/infras/otel"
	"backlog/shared/constant"
	"backlog/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	otelScopeName          = "event"
	otelEventTypeAttribute = "event.type"
)

// Event is the envelope written to the topic whenever a record changes.
type Event struct {
	Type       string `json:"type"`
	OccurredAt string `json:"occurredAt"`
	Data       any    `json:"data"`
}

// Publisher emits change events without blocking the request that caused them.
// Delivery failures are logged and dropped.
type Publisher interface {
	Publish(ctx context.Context, eventType string, key string, payload any)
}

type kafkaPublisherImpl struct {
	config *config.Config
	kafka  kafka.Client
	otel   otel.Otel
}

type noopPublisherImpl struct{}

func New(config *config.Config, kafkaClient kafka.Client, otl otel.Otel) Publisher {
	if !config.Events.Enable {
		log.Info().Msg("Event publishing is disabled")

		return &noopPublisherImpl{}
	}

	return &kafkaPublisherImpl{
		config: config,
		kafka:  kafkaClient,
		otel:   otl,
	}
}

func (publisher *kafkaPublisherImpl) Publish(ctx context.Context, eventType string, key string, payload any) {
	ctx, scope := publisher.otel.NewScope(ctx, otelScopeName, otelScopeName+".Publish")
	defer scope.End()

	scope.SetAttribute(otelEventTypeAttribute, eventType)

	message := kafka.Message{
		Key: key,
		Value: Event{
			Type:       eventType,
			OccurredAt: timezone.Now().Format(constant.DateFormat),
			Data:       payload,
		},
	}

	err := publisher.kafka.SendMessages(ctx, publisher.config.Events.Topic, message)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("type", eventType).Msg("Failed to publish event.")
	}
}

func (publisher *noopPublisherImpl) Publish(_ context.Context, _ string, _ string, _ any) {}
