package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/constants"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contracts"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
	"github.com/G3ndalf/auto-sales-bot-sub000/pkg/rabbitmq/rabbitmq_producer"
)

// RabbitMQAdEventsPublisher публикует события модерации в обменник
// ad-events. Перед отправкой тело проверяется по JSON-схеме, чтобы
// сломанный контракт ловился у нас, а не у потребителей.
type RabbitMQAdEventsPublisher struct {
	producer *rabbitmq_producer.Publisher
}

func NewRabbitMQAdEventsPublisher(producer *rabbitmq_producer.Publisher) (*RabbitMQAdEventsPublisher, error) {
	if producer == nil {
		return nil, fmt.Errorf("producer cannot be nil")
	}
	return &RabbitMQAdEventsPublisher{producer: producer}, nil
}

// PublishAdApproved отправляет AdApprovedEvent с ключом ad.approved.
func (a *RabbitMQAdEventsPublisher) PublishAdApproved(ctx context.Context, event port.AdApprovedEvent) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "RabbitMQAdEventsPublisher",
		"routing_key": constants.AdApprovedRoutingKey,
		"ad_id":       event.AdID,
	})

	body, err := json.Marshal(event)
	if err != nil {
		adapterLogger.Error("Failed to marshal event to JSON", err, nil)
		return fmt.Errorf("failed to marshal ad-approved event: %w", err)
	}

	if err := contracts.ValidateEvent(constants.AdApprovedEventType, constants.AdApprovedEventVersion, body); err != nil {
		adapterLogger.Error("Event failed schema validation", err, nil)
		return fmt.Errorf("ad-approved event failed schema validation: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers: amqp.Table{
			"event-type":    constants.AdApprovedEventType,
			"event-version": constants.AdApprovedEventVersion,
		},
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.producer.Publish(publishCtx, constants.AdApprovedRoutingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish ad-approved event", err, nil)
		return err
	}

	adapterLogger.Info("Successfully published ad-approved event", port.Fields{"ad_type": event.AdType})
	return nil
}

// NoopEventPublisher используется, когда RabbitMQ выключен конфигом:
// события просто отбрасываются.
type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishAdApproved(ctx context.Context, event port.AdApprovedEvent) error {
	return nil
}
