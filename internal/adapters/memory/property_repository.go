package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

var _ port.PropertyRepositoryPort = (*PropertyRepository)(nil)

// PropertyRepository хранит объявления в памяти в порядке добавления.
// Наружу всегда отдаются копии.
type PropertyRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]domain.Property
}

func NewPropertyRepository(seed ...domain.Property) *PropertyRepository {
	r := &PropertyRepository{byID: make(map[string]domain.Property, len(seed))}
	for _, p := range seed {
		r.order = append(r.order, p.ID)
		r.byID[p.ID] = p.Clone()
	}
	return r
}

func (r *PropertyRepository) Get(ctx context.Context, id string) (*domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	out := p.Clone()
	return &out, nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	return r.filter(func(domain.Property) bool { return true }), nil
}

func (r *PropertyRepository) ListBySeller(ctx context.Context, sellerID string) ([]domain.Property, error) {
	return r.filter(func(p domain.Property) bool { return p.SellerID == sellerID }), nil
}

func (r *PropertyRepository) ListByStatus(ctx context.Context, status domain.PropertyStatus) ([]domain.Property, error) {
	return r.filter(func(p domain.Property) bool { return p.Status == status }), nil
}

func (r *PropertyRepository) ListMatching(ctx context.Context, f domain.FilterState) ([]domain.Property, error) {
	return r.filter(func(p domain.Property) bool { return domain.MatchesFilter(p, f) }), nil
}

func (r *PropertyRepository) filter(keep func(domain.Property) bool) []domain.Property {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Property, 0, len(r.order))
	for _, id := range r.order {
		if p := r.byID[id]; keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (r *PropertyRepository) Insert(ctx context.Context, p domain.Property) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; exists {
		return fmt.Errorf("property %s already exists", p.ID)
	}
	r.order = append(r.order, p.ID)
	r.byID[p.ID] = p.Clone()
	return nil
}

func (r *PropertyRepository) Update(ctx context.Context, p domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return domain.ErrPropertyNotFound
	}
	r.byID[p.ID] = p.Clone()
	return nil
}

func (r *PropertyRepository) UpdateStatus(ctx context.Context, p domain.Property, expected domain.PropertyStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.byID[p.ID]
	if !exists {
		return domain.ErrPropertyNotFound
	}
	if current.Status != expected {
		return domain.ErrStatusConflict
	}
	current.Status = p.Status
	current.RejectionReason = p.RejectionReason
	r.byID[p.ID] = current
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return domain.ErrPropertyNotFound
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *PropertyRepository) IncrementViews(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, exists := r.byID[id]
	if !exists {
		return 0, domain.ErrPropertyNotFound
	}
	p.ViewCount++
	r.byID[id] = p
	return p.ViewCount, nil
}
