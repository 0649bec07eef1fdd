package port

import (
	"context"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

// InquiryRepositoryPort - заявки покупателей.
type InquiryRepositoryPort interface {
	Create(ctx context.Context, inq domain.Inquiry) error
	GetByID(ctx context.Context, id string) (*domain.Inquiry, error)
	ListByProperties(ctx context.Context, propertyIDs []string) ([]domain.Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) error
	Count(ctx context.Context) (int, error)
	DeleteByProperty(ctx context.Context, propertyID string) error
}
