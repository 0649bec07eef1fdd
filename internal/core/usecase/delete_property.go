package usecase

import (
	"context"
	"fmt"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

type DeletePropertyUseCase struct {
	properties port.PropertyRepositoryPort
	inquiries  port.InquiryRepositoryPort
	favorites  port.FavoritesRepositoryPort
}

func NewDeletePropertyUseCase(properties port.PropertyRepositoryPort, inquiries port.InquiryRepositoryPort, favorites port.FavoritesRepositoryPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{properties: properties, inquiries: inquiries, favorites: favorites}
}

// Execute удаляет объявление в любом статусе вместе с заявками и отметками избранного.
// Владелец удаляет свое объявление, администратор - любое.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, actorID string, actorRole domain.UserRole, propertyID string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"actor_id":    actorID,
		"actor_role":  actorRole,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	p, err := uc.properties.Get(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return fmt.Errorf("failed to get property: %w", err)
	}
	if p == nil {
		return domain.ErrPropertyNotFound
	}
	if actorRole != domain.RoleAdmin && p.SellerID != actorID {
		ucLogger.Warn("Actor is not allowed to delete property", port.Fields{"seller_id": p.SellerID})
		return domain.ErrForbidden
	}

	if err := uc.properties.Delete(ctx, propertyID); err != nil {
		ucLogger.Error("Failed to delete property", err, nil)
		return fmt.Errorf("failed to delete property: %w", err)
	}

	// объявление уже удалено, хвосты не повод отвечать ошибкой
	if err := uc.inquiries.DeleteByProperty(ctx, propertyID); err != nil {
		ucLogger.Warn("Failed to delete property inquiries", port.Fields{"error": err.Error()})
	}
	if err := uc.favorites.DeleteByProperty(ctx, propertyID); err != nil {
		ucLogger.Warn("Failed to delete property favorites", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"status": p.Status})
	return nil
}
