package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

// statusChanger - общий сценарий смены статуса объявления:
// загрузка -> проверка прав -> переход -> сохранение -> событие.
type statusChanger struct {
	properties port.PropertyRepositoryPort
	events     port.PropertyEventPublisherPort
	now        func() time.Time
}

func newStatusChanger(properties port.PropertyRepositoryPort, events port.PropertyEventPublisherPort) statusChanger {
	return statusChanger{
		properties: properties,
		events:     events,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ownedBy разрешает действие только владельцу объявления.
func ownedBy(sellerID string) func(p *domain.Property) error {
	return func(p *domain.Property) error {
		if p.SellerID != sellerID {
			return domain.ErrForbidden
		}
		return nil
	}
}

func (s statusChanger) change(
	ctx context.Context,
	logger port.LoggerPort,
	actorID, propertyID string,
	authorize func(p *domain.Property) error,
	apply func(p *domain.Property) error,
) (*domain.Property, error) {
	p, err := s.properties.Get(ctx, propertyID)
	if err != nil {
		logger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if p == nil {
		return nil, domain.ErrPropertyNotFound
	}

	if authorize != nil {
		if err := authorize(p); err != nil {
			logger.Warn("Actor is not allowed to change property status", port.Fields{"seller_id": p.SellerID})
			return nil, err
		}
	}

	from := p.Status
	if err := apply(p); err != nil {
		logger.Info("Status transition rejected", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := s.properties.UpdateStatus(ctx, *p, from); err != nil {
		logger.Error("Failed to save property status", err, nil)
		return nil, fmt.Errorf("failed to update property status: %w", err)
	}

	event := port.PropertyStatusChangedEvent{
		PropertyID:      p.ID,
		SellerID:        p.SellerID,
		From:            from,
		To:              p.Status,
		RejectionReason: p.RejectionReason,
		ChangedBy:       actorID,
		ChangedAt:       s.now(),
	}
	if err := s.events.PublishStatusChanged(ctx, event); err != nil {
		logger.Warn("Failed to publish status changed event", port.Fields{"error": err.Error()})
	}

	logger.Info("Property status changed", port.Fields{"from": from, "to": p.Status})
	return p, nil
}
