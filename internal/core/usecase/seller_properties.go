package usecase

import (
	"context"
	"fmt"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

type GetSellerPropertiesUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewGetSellerPropertiesUseCase(properties port.PropertyRepositoryPort) *GetSellerPropertiesUseCase {
	return &GetSellerPropertiesUseCase{properties: properties}
}

// Execute возвращает объявления продавца, самые новые первыми. Пустой status - без фильтра.
func (uc *GetSellerPropertiesUseCase) Execute(ctx context.Context, sellerID string, status domain.PropertyStatus) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "GetSellerProperties",
		"seller_id": sellerID,
		"status":    status,
	})

	ucLogger.Info("Use case started", nil)

	if status != "" && !status.IsValid() {
		return nil, domain.ValidationErrors{"status": fmt.Sprintf("Unknown status %q", status)}
	}

	props, err := uc.properties.ListBySeller(ctx, sellerID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to list seller properties: %w", err)
	}

	result := make([]domain.Property, 0, len(props))
	for _, p := range props {
		if status == "" || p.Status == status {
			result = append(result, p)
		}
	}
	result = domain.SortProperties(result, domain.SortNewest)

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(result)})
	return result, nil
}

type ArchivePropertyUseCase struct {
	changer statusChanger
}

func NewArchivePropertyUseCase(properties port.PropertyRepositoryPort, events port.PropertyEventPublisherPort) *ArchivePropertyUseCase {
	return &ArchivePropertyUseCase{changer: newStatusChanger(properties, events)}
}

func (uc *ArchivePropertyUseCase) Execute(ctx context.Context, sellerID, propertyID string) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ArchiveProperty",
		"seller_id":   sellerID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	p, err := uc.changer.change(ctx, ucLogger, sellerID, propertyID, ownedBy(sellerID), (*domain.Property).Archive)
	if err != nil {
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return p, nil
}

// ResubmitPropertyUseCase - явный возврат отклоненного или архивного объявления на модерацию.
type ResubmitPropertyUseCase struct {
	changer statusChanger
}

func NewResubmitPropertyUseCase(properties port.PropertyRepositoryPort, events port.PropertyEventPublisherPort) *ResubmitPropertyUseCase {
	return &ResubmitPropertyUseCase{changer: newStatusChanger(properties, events)}
}

func (uc *ResubmitPropertyUseCase) Execute(ctx context.Context, sellerID, propertyID string) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ResubmitProperty",
		"seller_id":   sellerID,
		"property_id": propertyID,
	})

	ucLogger.Info("Use case started", nil)

	p, err := uc.changer.change(ctx, ucLogger, sellerID, propertyID, ownedBy(sellerID), (*domain.Property).Resubmit)
	if err != nil {
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return p, nil
}
