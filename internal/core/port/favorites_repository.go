package port

import "context"

// FavoritesRepositoryPort - сохраненные пользователями объявления.
// Add и Remove идемпотентны.
type FavoritesRepositoryPort interface {
	Add(ctx context.Context, userID, propertyID string) error
	Remove(ctx context.Context, userID, propertyID string) error
	// ListPropertyIDs возвращает ID объявлений, последние сохраненные первыми.
	ListPropertyIDs(ctx context.Context, userID string) ([]string, error)
	DeleteByUser(ctx context.Context, userID string) error
	DeleteByProperty(ctx context.Context, propertyID string) error
}
