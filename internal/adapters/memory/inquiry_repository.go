package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

var _ port.InquiryRepositoryPort = (*InquiryRepository)(nil)

type InquiryRepository struct {
	mu        sync.RWMutex
	inquiries []domain.Inquiry
}

func NewInquiryRepository(seed ...domain.Inquiry) *InquiryRepository {
	return &InquiryRepository{inquiries: append([]domain.Inquiry(nil), seed...)}
}

func (r *InquiryRepository) Create(ctx context.Context, inq domain.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.inquiries {
		if existing.ID == inq.ID {
			return fmt.Errorf("inquiry %s already exists", inq.ID)
		}
	}
	r.inquiries = append(r.inquiries, inq)
	return nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, inq := range r.inquiries {
		if inq.ID == id {
			out := inq
			return &out, nil
		}
	}
	return nil, nil
}

func (r *InquiryRepository) ListByProperties(ctx context.Context, propertyIDs []string) ([]domain.Inquiry, error) {
	wanted := make(map[string]struct{}, len(propertyIDs))
	for _, id := range propertyIDs {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Inquiry, 0)
	for _, inq := range r.inquiries {
		if _, ok := wanted[inq.PropertyID]; ok {
			out = append(out, inq)
		}
	}
	return out, nil
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.inquiries {
		if r.inquiries[i].ID == id {
			r.inquiries[i].Status = status
			return nil
		}
	}
	return domain.ErrInquiryNotFound
}

func (r *InquiryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.inquiries), nil
}

func (r *InquiryRepository) DeleteByProperty(ctx context.Context, propertyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.inquiries[:0]
	for _, inq := range r.inquiries {
		if inq.PropertyID != propertyID {
			kept = append(kept, inq)
		}
	}
	r.inquiries = kept
	return nil
}
