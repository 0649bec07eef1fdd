package rabbitmq_consumer

import amqp "github.com/rabbitmq/amqp091-go"

type failureAction int

const (
	// actionDrop - nack без requeue, ретраи выключены
	actionDrop failureAction = iota
	// actionRetry - nack без requeue, сообщение уходит в retry-очередь через DLX
	actionRetry
	// actionDeadLetter - публикация в финальный DLX и ack оригинала
	actionDeadLetter
)

func decideFailureAction(retryEnabled bool, deathCount int64, maxRetries int) failureAction {
	if !retryEnabled {
		return actionDrop
	}
	if deathCount < int64(maxRetries) {
		return actionRetry
	}
	return actionDeadLetter
}

// DeathCount возвращает, сколько раз сообщение было отклонено из очереди queueName.
// Значение берется из заголовка x-death, который проставляет брокер.
func DeathCount(headers amqp.Table, queueName string) int64 {
	if headers == nil {
		return 0
	}
	deaths, ok := headers["x-death"].([]interface{})
	if !ok {
		return 0
	}

	for _, death := range deaths {
		tbl, ok := death.(amqp.Table)
		if !ok {
			continue
		}
		if queue, _ := tbl["queue"].(string); queue != queueName {
			continue
		}
		if count, ok := tbl["count"].(int64); ok {
			return count
		}
	}
	return 0
}
