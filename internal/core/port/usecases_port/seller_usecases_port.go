package usecases_port

import (
	"context"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

type GetSellerPropertiesUseCase interface {
	// status == "" - все объявления продавца
	Execute(ctx context.Context, sellerID string, status domain.PropertyStatus) ([]domain.Property, error)
}

type GetSellerDashboardUseCase interface {
	Execute(ctx context.Context, sellerID string) (*domain.SellerDashboard, error)
}

type GetSellerInquiriesUseCase interface {
	Execute(ctx context.Context, sellerID string) ([]domain.Inquiry, error)
}

type UpdateInquiryStatusUseCase interface {
	Execute(ctx context.Context, sellerID, inquiryID string, status domain.InquiryStatus) (*domain.Inquiry, error)
}

type ArchivePropertyUseCase interface {
	Execute(ctx context.Context, sellerID, propertyID string) (*domain.Property, error)
}

type ResubmitPropertyUseCase interface {
	Execute(ctx context.Context, sellerID, propertyID string) (*domain.Property, error)
}

type DeletePropertyUseCase interface {
	// Удалить может владелец или администратор
	Execute(ctx context.Context, actorID string, actorRole domain.UserRole, propertyID string) error
}

type GetProfileUseCase interface {
	Execute(ctx context.Context, userID string) (*domain.User, error)
}

type UpdateProfileUseCase interface {
	Execute(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error)
}
