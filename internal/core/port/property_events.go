package port

import (
	"context"
	"time"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

// PropertyStatusChangedEvent публикуется после каждого перехода статуса объявления.
type PropertyStatusChangedEvent struct {
	PropertyID      string
	SellerID        string
	From            domain.PropertyStatus
	To              domain.PropertyStatus
	RejectionReason string
	ChangedBy       string
	ChangedAt       time.Time
}

// PropertyEventPublisherPort - исходящие события об объявлениях.
type PropertyEventPublisherPort interface {
	PublishSubmitted(ctx context.Context, p domain.Property) error
	PublishStatusChanged(ctx context.Context, event PropertyStatusChangedEvent) error
	PublishViewed(ctx context.Context, propertyID string) error
}
