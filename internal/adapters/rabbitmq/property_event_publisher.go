package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/theanasiqbal/Upfox-Property/internal/constants"
	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/contracts"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

const publishTimeout = 10 * time.Second

// MessagePublisher - то, что нужно адаптеру от rabbitmq_producer.Publisher
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

var _ port.PropertyEventPublisherPort = (*PropertyEventPublisherAdapter)(nil)

// PropertyEventPublisherAdapter публикует события объявлений в topic-обменник.
// Перед отправкой тело проверяется по JSON-схеме события.
type PropertyEventPublisherAdapter struct {
	producer MessagePublisher
	now      func() time.Time
}

func NewPropertyEventPublisherAdapter(producer MessagePublisher) (*PropertyEventPublisherAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &PropertyEventPublisherAdapter{
		producer: producer,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

func (a *PropertyEventPublisherAdapter) PublishSubmitted(ctx context.Context, p domain.Property) error {
	return a.publish(ctx, constants.RoutingKeyPropertySubmitted, contracts.EventPropertySubmitted, toSubmittedDTO(p))
}

func (a *PropertyEventPublisherAdapter) PublishStatusChanged(ctx context.Context, event port.PropertyStatusChangedEvent) error {
	return a.publish(ctx, constants.RoutingKeyPropertyStatusChanged, contracts.EventPropertyStatusChanged, toStatusChangedDTO(event))
}

func (a *PropertyEventPublisherAdapter) PublishViewed(ctx context.Context, propertyID string) error {
	dto := PropertyViewedDTO{PropertyID: propertyID, ViewedAt: a.now()}
	return a.publish(ctx, constants.RoutingKeyPropertyViewed, contracts.EventPropertyViewed, dto)
}

func (a *PropertyEventPublisherAdapter) publish(ctx context.Context, routingKey, eventType string, dto interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "PropertyEventPublisherAdapter",
		"routing_key": routingKey,
		"event_type":  eventType,
	})

	body, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal %s: %w", eventType, err)
	}

	if err := contracts.ValidateEvent(eventType, contracts.VersionV1, body); err != nil {
		adapterLogger.Error("Event does not match its schema", err, nil)
		return fmt.Errorf("rabbitmq adapter: invalid %s: %w", eventType, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    a.now(),
		Headers: amqp.Table{
			constants.HeaderEventType:    eventType,
			constants.HeaderEventVersion: contracts.VersionV1,
		},
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers[constants.HeaderTraceID] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish %s: %w", eventType, err)
	}

	adapterLogger.Debug("Event published", nil)
	return nil
}
