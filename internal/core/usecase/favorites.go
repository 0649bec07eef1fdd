package usecase

import (
	"context"
	"fmt"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

type AddToFavoritesUseCase struct {
	favorites  port.FavoritesRepositoryPort
	properties port.PropertyRepositoryPort
}

func NewAddToFavoritesUseCase(favorites port.FavoritesRepositoryPort, properties port.PropertyRepositoryPort) *AddToFavoritesUseCase {
	return &AddToFavoritesUseCase{favorites: favorites, properties: properties}
}

// Execute сохраняет объявление в избранное. Сохранить можно только опубликованное объявление.
func (uc *AddToFavoritesUseCase) Execute(ctx context.Context, userID, propertyID string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "AddToFavorites",
		"user_id":     userID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	p, err := uc.properties.Get(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return fmt.Errorf("failed to get property: %w", err)
	}
	if p == nil || p.Status != domain.StatusApproved {
		return domain.ErrPropertyNotFound
	}

	if err := uc.favorites.Add(ctx, userID, propertyID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type RemoveFromFavoritesUseCase struct {
	favorites port.FavoritesRepositoryPort
}

func NewRemoveFromFavoritesUseCase(favorites port.FavoritesRepositoryPort) *RemoveFromFavoritesUseCase {
	return &RemoveFromFavoritesUseCase{favorites: favorites}
}

func (uc *RemoveFromFavoritesUseCase) Execute(ctx context.Context, userID, propertyID string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "RemoveFromFavorites",
		"user_id":     userID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.favorites.Remove(ctx, userID, propertyID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type GetUserFavoritesUseCase struct {
	favorites  port.FavoritesRepositoryPort
	properties port.PropertyRepositoryPort
	pageSize   int
}

func NewGetUserFavoritesUseCase(favorites port.FavoritesRepositoryPort, properties port.PropertyRepositoryPort, pageSize int) *GetUserFavoritesUseCase {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &GetUserFavoritesUseCase{favorites: favorites, properties: properties, pageSize: pageSize}
}

// Execute возвращает страницу сохраненных объявлений в порядке сохранения, последние первыми.
// Снятые с публикации и удаленные объявления пропускаются.
func (uc *GetUserFavoritesUseCase) Execute(ctx context.Context, userID string, page int) (*domain.Page[domain.Property], error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserFavorites",
		"user_id":  userID,
		"page":     page,
	})

	ucLogger.Info("Use case started", nil)

	ids, err := uc.favorites.ListPropertyIDs(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to get favorite IDs from repository", err, nil)
		return nil, fmt.Errorf("failed to get favorite IDs: %w", err)
	}

	props := make([]domain.Property, 0, len(ids))
	for _, id := range ids {
		p, err := uc.properties.Get(ctx, id)
		if err != nil {
			ucLogger.Error("Failed to get favorite property", err, port.Fields{"property_id": id})
			return nil, fmt.Errorf("failed to get property %s: %w", id, err)
		}
		if p == nil || p.Status != domain.StatusApproved {
			continue
		}
		props = append(props, *p)
	}

	result := domain.Paginate(props, page, uc.pageSize)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_favorites": len(ids),
		"visible":         result.TotalItems,
		"items_on_page":   len(result.Items),
	})
	return &result, nil
}

// GetUserFavoriteIDsUseCase отдает только ID: каталогу нужно лишь отметить сохраненные карточки.
type GetUserFavoriteIDsUseCase struct {
	favorites port.FavoritesRepositoryPort
}

func NewGetUserFavoriteIDsUseCase(favorites port.FavoritesRepositoryPort) *GetUserFavoriteIDsUseCase {
	return &GetUserFavoriteIDsUseCase{favorites: favorites}
}

func (uc *GetUserFavoriteIDsUseCase) Execute(ctx context.Context, userID string) ([]string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserFavoriteIDs",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	ids, err := uc.favorites.ListPropertyIDs(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to get favorite IDs from repository", err, nil)
		return nil, fmt.Errorf("failed to get favorite IDs: %w", err)
	}
	return ids, nil
}
