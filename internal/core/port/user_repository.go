package port

import (
	"context"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

// UserRepositoryPort - профили пользователей.
// GetByID возвращает (nil, nil), если пользователь не найден.
type UserRepositoryPort interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// Update и Delete возвращают domain.ErrUserNotFound, если записи нет.
	Update(ctx context.Context, u domain.User) error
	Delete(ctx context.Context, id string) error
}
