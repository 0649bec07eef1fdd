package port

import (
	"context"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

// PropertyRepositoryPort - хранилище объявлений.
// Get возвращает (nil, nil), если объявление не найдено.
type PropertyRepositoryPort interface {
	Get(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context) ([]domain.Property, error)
	ListBySeller(ctx context.Context, sellerID string) ([]domain.Property, error)
	ListByStatus(ctx context.Context, status domain.PropertyStatus) ([]domain.Property, error)
	// ListMatching возвращает одобренные объявления, подходящие под фильтр.
	// Допускается надмножество: окончательную фильтрацию выполняет domain.Browse.
	ListMatching(ctx context.Context, f domain.FilterState) ([]domain.Property, error)

	Insert(ctx context.Context, p domain.Property) error
	// Update перезаписывает объявление целиком. Если записи нет - domain.ErrPropertyNotFound.
	Update(ctx context.Context, p domain.Property) error
	// UpdateStatus сохраняет статус и причину отклонения, только если текущий статус равен expected.
	// Иначе - domain.ErrStatusConflict.
	UpdateStatus(ctx context.Context, p domain.Property, expected domain.PropertyStatus) error
	Delete(ctx context.Context, id string) error

	// IncrementViews атомарно увеличивает счетчик просмотров и возвращает новое значение.
	IncrementViews(ctx context.Context, id string) (int, error)
}
