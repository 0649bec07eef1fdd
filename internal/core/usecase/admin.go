package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

type ListPropertiesByStatusUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewListPropertiesByStatusUseCase(properties port.PropertyRepositoryPort) *ListPropertiesByStatusUseCase {
	return &ListPropertiesByStatusUseCase{properties: properties}
}

// Execute - очередь модерации и списки по статусам. Pending отдаются самыми старыми первыми.
func (uc *ListPropertiesByStatusUseCase) Execute(ctx context.Context, status domain.PropertyStatus) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListPropertiesByStatus",
		"status":   status,
	})

	ucLogger.Info("Use case started", nil)

	if !status.IsValid() {
		return nil, domain.ValidationErrors{"status": fmt.Sprintf("Unknown status %q", status)}
	}

	props, err := uc.properties.ListByStatus(ctx, status)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	if status == domain.StatusPending {
		// очередь модерации: кто раньше подал, того раньше и смотрим
		slices.SortStableFunc(props, func(a, b domain.Property) int {
			return a.ListingDate.Compare(b.ListingDate)
		})
	} else {
		props = domain.SortProperties(props, domain.SortNewest)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(props)})
	return props, nil
}

type ApprovePropertyUseCase struct {
	changer statusChanger
}

func NewApprovePropertyUseCase(properties port.PropertyRepositoryPort, events port.PropertyEventPublisherPort) *ApprovePropertyUseCase {
	return &ApprovePropertyUseCase{changer: newStatusChanger(properties, events)}
}

func (uc *ApprovePropertyUseCase) Execute(ctx context.Context, adminID, propertyID string) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ApproveProperty",
		"admin_id":    adminID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	p, err := uc.changer.change(ctx, ucLogger, adminID, propertyID, nil, (*domain.Property).Approve)
	if err != nil {
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return p, nil
}

type RejectPropertyUseCase struct {
	changer statusChanger
}

func NewRejectPropertyUseCase(properties port.PropertyRepositoryPort, events port.PropertyEventPublisherPort) *RejectPropertyUseCase {
	return &RejectPropertyUseCase{changer: newStatusChanger(properties, events)}
}

func (uc *RejectPropertyUseCase) Execute(ctx context.Context, adminID, propertyID, reason string) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "RejectProperty",
		"admin_id":    adminID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	reject := func(p *domain.Property) error { return p.Reject(reason) }
	p, err := uc.changer.change(ctx, ucLogger, adminID, propertyID, nil, reject)
	if err != nil {
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return p, nil
}

type GetAdminDashboardUseCase struct {
	properties port.PropertyRepositoryPort
	users      port.UserRepositoryPort
	inquiries  port.InquiryRepositoryPort
}

func NewGetAdminDashboardUseCase(properties port.PropertyRepositoryPort, users port.UserRepositoryPort, inquiries port.InquiryRepositoryPort) *GetAdminDashboardUseCase {
	return &GetAdminDashboardUseCase{properties: properties, users: users, inquiries: inquiries}
}

func (uc *GetAdminDashboardUseCase) Execute(ctx context.Context) (*domain.AdminDashboard, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetAdminDashboard",
	})

	ucLogger.Info("Use case started", nil)

	props, err := uc.properties.List(ctx)
	if err != nil {
		ucLogger.Error("Failed to list properties", err, nil)
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	users, err := uc.users.List(ctx)
	if err != nil {
		ucLogger.Error("Failed to list users", err, nil)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	inquiryCount, err := uc.inquiries.Count(ctx)
	if err != nil {
		ucLogger.Error("Failed to count inquiries", err, nil)
		return nil, fmt.Errorf("failed to count inquiries: %w", err)
	}

	dashboard := domain.BuildAdminDashboard(props, users, inquiryCount)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"pending":  dashboard.PendingProperties,
		"approved": dashboard.ApprovedProperties,
	})
	return &dashboard, nil
}

type ListUsersUseCase struct {
	users port.UserRepositoryPort
}

func NewListUsersUseCase(users port.UserRepositoryPort) *ListUsersUseCase {
	return &ListUsersUseCase{users: users}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListUsers",
	})

	ucLogger.Info("Use case started", nil)

	users, err := uc.users.List(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(users)})
	return users, nil
}
