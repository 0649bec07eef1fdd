package constants

// Обменник событий объявлений
const (
	PropertyEventsExchange     = "property_events"
	PropertyEventsExchangeType = "topic"
)

// Ключи маршрутизации
const (
	RoutingKeyPropertySubmitted     = "property.submitted"
	RoutingKeyPropertyStatusChanged = "property.status_changed"
	RoutingKeyPropertyViewed        = "property.viewed"
)

// Очереди
const (
	QueuePropertyViews = "property_views"
)

const (
	FinalDLXExchange   = "property_views_final_dlx"
	FinalDLQ           = "property_views_final_dlq"
	FinalDLQRoutingKey = "property_views.dlq.key"
)

// Заголовки AMQP-сообщений
const (
	HeaderTraceID      = "x-trace-id"
	HeaderEventType    = "x-event-type"
	HeaderEventVersion = "x-event-version"
)
