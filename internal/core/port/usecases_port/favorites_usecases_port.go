package usecases_port

import (
	"context"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

type AddToFavoritesUseCase interface {
	Execute(ctx context.Context, userID, propertyID string) error
}

type RemoveFromFavoritesUseCase interface {
	Execute(ctx context.Context, userID, propertyID string) error
}

type GetUserFavoritesUseCase interface {
	Execute(ctx context.Context, userID string, page int) (*domain.Page[domain.Property], error)
}

type GetUserFavoriteIDsUseCase interface {
	Execute(ctx context.Context, userID string) ([]string, error)
}
