package memory

import (
	"context"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port/usecases_port"
)

var _ port.PropertyEventPublisherPort = (*InProcessEventPublisher)(nil)

// InProcessEventPublisher используется без брокера: просмотр учитывается сразу,
// остальные события только пишутся в лог.
type InProcessEventPublisher struct {
	recordView usecases_port.RecordPropertyViewUseCase
}

func NewInProcessEventPublisher(recordView usecases_port.RecordPropertyViewUseCase) *InProcessEventPublisher {
	return &InProcessEventPublisher{recordView: recordView}
}

func (p *InProcessEventPublisher) PublishSubmitted(ctx context.Context, property domain.Property) error {
	contextkeys.LoggerFromContext(ctx).Info("Property submitted", port.Fields{
		"event":       "property.submitted",
		"property_id": property.ID,
		"seller_id":   property.SellerID,
	})
	return nil
}

func (p *InProcessEventPublisher) PublishStatusChanged(ctx context.Context, event port.PropertyStatusChangedEvent) error {
	contextkeys.LoggerFromContext(ctx).Info("Property status changed", port.Fields{
		"event":       "property.status_changed",
		"property_id": event.PropertyID,
		"from":        event.From,
		"to":          event.To,
		"changed_by":  event.ChangedBy,
	})
	return nil
}

func (p *InProcessEventPublisher) PublishViewed(ctx context.Context, propertyID string) error {
	_, err := p.recordView.Execute(ctx, propertyID)
	return err
}
