package usecase

import (
	"context"
	"fmt"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

type GetPropertyDetailsUseCase struct {
	properties port.PropertyRepositoryPort
	users      port.UserRepositoryPort
	events     port.PropertyEventPublisherPort
}

func NewGetPropertyDetailsUseCase(properties port.PropertyRepositoryPort, users port.UserRepositoryPort, events port.PropertyEventPublisherPort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{properties: properties, users: users, events: events}
}

// Execute возвращает карточку одобренного объявления с продавцом и похожими объявлениями.
// Неодобренные объявления публично не видны. Просмотр учитывается асинхронно через событие.
func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, propertyID string) (*domain.PropertyDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	p, err := uc.properties.Get(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if p == nil || p.Status != domain.StatusApproved {
		ucLogger.Info("Property is not publicly visible", nil)
		return nil, domain.ErrPropertyNotFound
	}

	// Отсутствие продавца - не ошибка, карточка отдается без него
	seller, err := uc.users.GetByID(ctx, p.SellerID)
	if err != nil {
		ucLogger.Error("Failed to get seller", err, port.Fields{"seller_id": p.SellerID})
		return nil, fmt.Errorf("failed to get seller: %w", err)
	}

	approved, err := uc.properties.ListByStatus(ctx, domain.StatusApproved)
	if err != nil {
		ucLogger.Error("Failed to list approved properties", err, nil)
		return nil, fmt.Errorf("failed to list similar properties: %w", err)
	}

	details := &domain.PropertyDetails{
		Property: *p,
		Seller:   seller,
		Similar:  domain.SimilarProperties(approved, *p, domain.SimilarPropertiesLimit),
	}

	if err := uc.events.PublishViewed(ctx, p.ID); err != nil {
		ucLogger.Warn("Failed to publish property viewed event", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"seller_found":  seller != nil,
		"similar_count": len(details.Similar),
	})

	return details, nil
}
