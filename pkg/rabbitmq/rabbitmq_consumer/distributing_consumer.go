package rabbitmq_consumer

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/theanasiqbal/Upfox-Property/pkg/rabbitmq/rabbitmq_common"
)

// MessageHandler обрабатывает одно сообщение. Ack/nack/ретраи выполняет пакет:
// nil - ack, ошибка - ретрай или финальный DLQ.
type MessageHandler func(delivery amqp.Delivery) error

// DistributingConsumer запускает обработчик для каждого сообщения в отдельной горутине.
// Параллелизм ограничивается PrefetchCount.
type DistributingConsumer struct {
	baseConsumer *baseConsumer
	handler      MessageHandler
}

func NewDistributingConsumer(cfg ConsumerConfig, handler MessageHandler, connManager *rabbitmq_common.ConnectionManager) (*DistributingConsumer, error) {
	if handler == nil {
		return nil, fmt.Errorf("distributing Consumer: message handler is required")
	}

	bc, err := newBaseConsumer(cfg, connManager)
	if err != nil {
		return nil, fmt.Errorf("distributing Consumer: %w", err)
	}

	return &DistributingConsumer{baseConsumer: bc, handler: handler}, nil
}

// StartConsuming блокируется до отмены ctx (возвращает nil) или закрытия соединения (возвращает ошибку).
func (c *DistributingConsumer) StartConsuming(ctx context.Context) error {
	bc := c.baseConsumer
	if bc.channel == nil || bc.connection == nil || bc.connection.IsClosed() {
		return fmt.Errorf("distributing Consumer: not connected")
	}

	msgs, err := bc.channel.Consume(bc.actualQueueName, bc.config.ConsumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("distributing Consumer %s: failed to register a consumer on queue '%s': %w", bc.config.ConsumerTag, bc.actualQueueName, err)
	}

	bc.Logger.Info("Waiting for messages on queue", "queue_name", bc.actualQueueName)

	notifyClose := bc.connection.NotifyClose(make(chan *amqp.Error, 1))

	for {
		select {
		case <-ctx.Done():
			bc.Logger.Info("Context cancelled, stopping consumer", "consumer_tag", bc.config.ConsumerTag)
			return nil

		case amqpErr, ok := <-notifyClose:
			if !ok || amqpErr == nil {
				return fmt.Errorf("distributing Consumer %s: connection closed", bc.config.ConsumerTag)
			}
			bc.Logger.Error(amqpErr, "Connection closed for consumer", "consumer_tag", bc.config.ConsumerTag)
			return amqpErr

		case d, ok := <-msgs:
			if !ok {
				bc.Logger.Info("Deliveries channel closed by broker", "consumer_tag", bc.config.ConsumerTag)
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("distributing Consumer %s: deliveries channel closed", bc.config.ConsumerTag)
			}

			bc.wg.Add(1)
			go func(delivery amqp.Delivery) {
				defer bc.wg.Done()
				c.process(delivery)
			}(d)
		}
	}
}

func (c *DistributingConsumer) process(delivery amqp.Delivery) {
	bc := c.baseConsumer
	tag := bc.config.ConsumerTag

	bc.Logger.Debug("Started processing message", "consumer_tag", tag, "delivery_tag", delivery.DeliveryTag)

	processErr := c.handler(delivery)
	if processErr == nil {
		_ = delivery.Ack(false)
		bc.Logger.Debug("Message acked", "consumer_tag", tag, "delivery_tag", delivery.DeliveryTag)
		return
	}

	bc.Logger.Error(processErr, "Handler error for message", "consumer_tag", tag, "delivery_tag", delivery.DeliveryTag)

	deathCount := DeathCount(delivery.Headers, bc.actualQueueName)
	switch decideFailureAction(bc.config.EnableRetryMechanism, deathCount, bc.config.MaxRetries) {
	case actionDrop:
		_ = delivery.Nack(false, false)

	case actionRetry:
		bc.Logger.Info("Retrying message", "consumer_tag", tag, "delivery_tag", delivery.DeliveryTag, "death_count", deathCount)
		_ = delivery.Nack(false, false)

	case actionDeadLetter:
		bc.Logger.Warn("Max retries reached, publishing to final DLX", "consumer_tag", tag, "delivery_tag", delivery.DeliveryTag)
		err := bc.finalDlxPublisher.Publish(context.Background(), bc.config.FinalDLQRoutingKey, amqp.Publishing{
			ContentType:  delivery.ContentType,
			Body:         delivery.Body,
			Headers:      delivery.Headers,
			Timestamp:    time.Now(),
			DeliveryMode: amqp.Persistent,
		})
		if err != nil {
			bc.Logger.Error(err, "Failed to publish to final DLX, message goes to retry loop again", "consumer_tag", tag)
			_ = delivery.Nack(false, false)
			return
		}
		_ = delivery.Ack(false)
	}
}

func (c *DistributingConsumer) Close() error {
	c.baseConsumer.Logger.Info("Closing consumer")
	return c.baseConsumer.Close()
}
