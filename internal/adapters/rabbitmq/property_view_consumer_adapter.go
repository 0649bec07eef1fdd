package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/theanasiqbal/Upfox-Property/internal/constants"
	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/contracts"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port/usecases_port"
	"github.com/theanasiqbal/Upfox-Property/pkg/rabbitmq/rabbitmq_common"
	"github.com/theanasiqbal/Upfox-Property/pkg/rabbitmq/rabbitmq_consumer"
)

var _ port.EventListenerPort = (*PropertyViewConsumerAdapter)(nil)

// PropertyViewConsumerAdapter - входящий адаптер: слушает события property.viewed
// и увеличивает счетчик просмотров.
type PropertyViewConsumerAdapter struct {
	consumer *rabbitmq_consumer.DistributingConsumer
	useCase  usecases_port.RecordPropertyViewUseCase
	logger   port.LoggerPort
}

func NewPropertyViewConsumerAdapter(
	consumerCfg rabbitmq_consumer.ConsumerConfig,
	useCase usecases_port.RecordPropertyViewUseCase,
	logger port.LoggerPort,
	connManager *rabbitmq_common.ConnectionManager,
) (*PropertyViewConsumerAdapter, error) {
	adapter := &PropertyViewConsumerAdapter{
		useCase: useCase,
		logger:  logger,
	}

	pkgLogger := logger.WithFields(port.Fields{"component": "rabbitmq_consumer", "consumer_tag": consumerCfg.ConsumerTag})
	consumerCfg.Logger = NewPkgLoggerBridge(pkgLogger)

	consumer, err := rabbitmq_consumer.NewDistributingConsumer(consumerCfg, adapter.messageHandler, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create RabbitMQ consumer for property views: %w", err)
	}
	adapter.consumer = consumer

	return adapter, nil
}

// messageHandler: nil - ack, ошибка - повтор через retry-очередь.
// Битые сообщения и удаленные объявления повторять бессмысленно, они подтверждаются.
func (a *PropertyViewConsumerAdapter) messageHandler(d amqp.Delivery) error {
	traceID, _ := d.Headers[constants.HeaderTraceID].(string)
	if traceID == "" {
		traceID = uuid.New().String()
	}

	msgLogger := a.logger.WithFields(port.Fields{
		"trace_id":     traceID,
		"delivery_tag": d.DeliveryTag,
		"adapter_name": "PropertyViewConsumerAdapter",
	})

	ctx := context.Background()
	ctx = contextkeys.ContextWithLogger(ctx, msgLogger)
	ctx = contextkeys.ContextWithTraceID(ctx, traceID)

	if err := contracts.ValidateEvent(contracts.EventPropertyViewed, contracts.VersionV1, d.Body); err != nil {
		msgLogger.Error("Discarding message that does not match the schema", err, nil)
		return nil
	}

	var dto PropertyViewedDTO
	if err := json.Unmarshal(d.Body, &dto); err != nil {
		msgLogger.Error("Discarding message that cannot be decoded", err, nil)
		return nil
	}

	_, err := a.useCase.Execute(ctx, dto.PropertyID)
	if errors.Is(err, domain.ErrPropertyNotFound) {
		msgLogger.Warn("Viewed property no longer exists", port.Fields{"property_id": dto.PropertyID})
		return nil
	}
	return err
}

func (a *PropertyViewConsumerAdapter) Start(ctx context.Context) error {
	a.logger.Info("Starting property view consumer", nil)
	return a.consumer.StartConsuming(ctx)
}

func (a *PropertyViewConsumerAdapter) Close() error {
	a.logger.Info("Closing property view consumer", nil)
	return a.consumer.Close()
}
