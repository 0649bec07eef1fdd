package usecases_port

import (
	"context"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

type ListPropertiesByStatusUseCase interface {
	Execute(ctx context.Context, status domain.PropertyStatus) ([]domain.Property, error)
}

type ApprovePropertyUseCase interface {
	Execute(ctx context.Context, adminID, propertyID string) (*domain.Property, error)
}

type RejectPropertyUseCase interface {
	Execute(ctx context.Context, adminID, propertyID, reason string) (*domain.Property, error)
}

type GetAdminDashboardUseCase interface {
	Execute(ctx context.Context) (*domain.AdminDashboard, error)
}

type ListUsersUseCase interface {
	Execute(ctx context.Context) ([]domain.User, error)
}

type SetUserRoleUseCase interface {
	Execute(ctx context.Context, adminID, userID string, role domain.UserRole) (*domain.User, error)
}

type DeleteUserUseCase interface {
	Execute(ctx context.Context, adminID, userID string) error
}
