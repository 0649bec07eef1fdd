package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theanasiqbal/Upfox-Property/internal/constants"
	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/contracts"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

type published struct {
	routingKey string
	msg        amqp.Publishing
	deadline   bool
}

type fakeProducer struct {
	messages []published
	err      error
}

func (f *fakeProducer) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	_, hasDeadline := ctx.Deadline()
	f.messages = append(f.messages, published{routingKey: routingKey, msg: msg, deadline: hasDeadline})
	return nil
}

var eventTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPublisher(t *testing.T) (*PropertyEventPublisherAdapter, *fakeProducer) {
	t.Helper()
	producer := &fakeProducer{}
	adapter, err := NewPropertyEventPublisherAdapter(producer)
	require.NoError(t, err)
	adapter.now = func() time.Time { return eventTime }
	return adapter, producer
}

func pendingProperty() domain.Property {
	return domain.Property{
		ID:           "p-1",
		SellerID:     "seller-1",
		Title:        "Sunny 2BHK",
		PropertyType: domain.PropertyTypeApartment,
		ListingType:  domain.ListingTypeRent,
		Price:        15000,
		City:         "Civil Lines",
		Status:       domain.StatusPending,
		Images:       []string{"a.jpg", "b.jpg"},
		ListingDate:  eventTime,
	}
}

func TestNewPropertyEventPublisherAdapter_NilProducer(t *testing.T) {
	_, err := NewPropertyEventPublisherAdapter(nil)
	assert.Error(t, err)
}

func TestPublishSubmitted(t *testing.T) {
	adapter, producer := newTestPublisher(t)
	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-42")

	require.NoError(t, adapter.PublishSubmitted(ctx, pendingProperty()))
	require.Len(t, producer.messages, 1)

	got := producer.messages[0]
	assert.Equal(t, constants.RoutingKeyPropertySubmitted, got.routingKey)
	assert.True(t, got.deadline)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, "trace-42", got.msg.Headers[constants.HeaderTraceID])
	assert.Equal(t, contracts.EventPropertySubmitted, got.msg.Headers[constants.HeaderEventType])
	assert.Equal(t, contracts.VersionV1, got.msg.Headers[constants.HeaderEventVersion])

	var dto PropertySubmittedDTO
	require.NoError(t, json.Unmarshal(got.msg.Body, &dto))
	assert.Equal(t, "p-1", dto.PropertyID)
	assert.Equal(t, 2, dto.ImageCount)
	assert.Equal(t, "pending", dto.Status)
}

func TestPublishSubmitted_WithoutTraceHasNoTraceHeader(t *testing.T) {
	adapter, producer := newTestPublisher(t)

	require.NoError(t, adapter.PublishSubmitted(context.Background(), pendingProperty()))
	require.Len(t, producer.messages, 1)
	assert.NotContains(t, producer.messages[0].msg.Headers, constants.HeaderTraceID)
}

func TestPublishSubmitted_RejectsInvalidEvent(t *testing.T) {
	adapter, producer := newTestPublisher(t)
	p := pendingProperty()
	p.Status = domain.StatusApproved

	err := adapter.PublishSubmitted(context.Background(), p)
	assert.Error(t, err)
	assert.Empty(t, producer.messages)
}

func TestPublishStatusChanged(t *testing.T) {
	adapter, producer := newTestPublisher(t)

	event := port.PropertyStatusChangedEvent{
		PropertyID:      "p-1",
		SellerID:        "seller-1",
		From:            domain.StatusPending,
		To:              domain.StatusRejected,
		RejectionReason: "Blurry photos",
		ChangedBy:       "admin-1",
		ChangedAt:       eventTime,
	}
	require.NoError(t, adapter.PublishStatusChanged(context.Background(), event))
	require.Len(t, producer.messages, 1)
	assert.Equal(t, constants.RoutingKeyPropertyStatusChanged, producer.messages[0].routingKey)

	var dto PropertyStatusChangedDTO
	require.NoError(t, json.Unmarshal(producer.messages[0].msg.Body, &dto))
	assert.Equal(t, "pending", dto.FromStatus)
	assert.Equal(t, "rejected", dto.ToStatus)
	assert.Equal(t, "Blurry photos", dto.RejectionReason)

	// отклонение без причины не проходит схему
	event.RejectionReason = ""
	assert.Error(t, adapter.PublishStatusChanged(context.Background(), event))
	assert.Len(t, producer.messages, 1)
}

func TestPublishViewed(t *testing.T) {
	adapter, producer := newTestPublisher(t)

	require.NoError(t, adapter.PublishViewed(context.Background(), "p-7"))
	require.Len(t, producer.messages, 1)
	assert.Equal(t, constants.RoutingKeyPropertyViewed, producer.messages[0].routingKey)
	assert.JSONEq(t, `{"property_id":"p-7","viewed_at":"2026-03-01T12:00:00Z"}`, string(producer.messages[0].msg.Body))
}

func TestPublish_ProducerError(t *testing.T) {
	adapter, producer := newTestPublisher(t)
	producer.err = errors.New("channel closed")

	err := adapter.PublishViewed(context.Background(), "p-7")
	require.Error(t, err)
	assert.ErrorIs(t, err, producer.err)
}
