package memory

import (
	"context"
	"sync"
	"time"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

var _ port.FavoritesRepositoryPort = (*FavoritesRepository)(nil)

// FavoritesRepository хранит избранное в порядке сохранения.
type FavoritesRepository struct {
	mu        sync.RWMutex
	favorites []domain.Favorite
	now       func() time.Time
}

func NewFavoritesRepository(seed ...domain.Favorite) *FavoritesRepository {
	return &FavoritesRepository{
		favorites: append([]domain.Favorite(nil), seed...),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *FavoritesRepository) Add(ctx context.Context, userID, propertyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.favorites {
		if f.UserID == userID && f.PropertyID == propertyID {
			return nil
		}
	}
	r.favorites = append(r.favorites, domain.Favorite{UserID: userID, PropertyID: propertyID, CreatedAt: r.now()})
	return nil
}

func (r *FavoritesRepository) Remove(ctx context.Context, userID, propertyID string) error {
	r.removeWhere(func(f domain.Favorite) bool { return f.UserID == userID && f.PropertyID == propertyID })
	return nil
}

func (r *FavoritesRepository) ListPropertyIDs(ctx context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0)
	// с конца: последние сохраненные первыми
	for i := len(r.favorites) - 1; i >= 0; i-- {
		if r.favorites[i].UserID == userID {
			ids = append(ids, r.favorites[i].PropertyID)
		}
	}
	return ids, nil
}

func (r *FavoritesRepository) DeleteByUser(ctx context.Context, userID string) error {
	r.removeWhere(func(f domain.Favorite) bool { return f.UserID == userID })
	return nil
}

func (r *FavoritesRepository) DeleteByProperty(ctx context.Context, propertyID string) error {
	r.removeWhere(func(f domain.Favorite) bool { return f.PropertyID == propertyID })
	return nil
}

func (r *FavoritesRepository) removeWhere(drop func(f domain.Favorite) bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.favorites[:0]
	for _, f := range r.favorites {
		if !drop(f) {
			kept = append(kept, f)
		}
	}
	r.favorites = kept
}
