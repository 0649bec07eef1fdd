package port

import "context"

// EventListenerPort - компонент, который слушает события из очереди
// и запускает соответствующий use case.
type EventListenerPort interface {
	// Start блокируется до отмены контекста
	Start(ctx context.Context) error

	// Close корректно останавливает слушателя
	Close() error
}
