package usecases_port

import (
	"context"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

type BrowsePropertiesUseCase interface {
	Execute(ctx context.Context, state domain.BrowseState) (*domain.Page[domain.Property], error)
}

type GetPropertyDetailsUseCase interface {
	Execute(ctx context.Context, propertyID string) (*domain.PropertyDetails, error)
}

type RecordPropertyViewUseCase interface {
	Execute(ctx context.Context, propertyID string) (int, error)
}

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context) (*domain.FilterOptions, error)
}

type CreateInquiryUseCase interface {
	Execute(ctx context.Context, input domain.InquiryInput) (*domain.Inquiry, error)
}
