package usecase

import (
	"context"
	"fmt"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

type RecordPropertyViewUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewRecordPropertyViewUseCase(properties port.PropertyRepositoryPort) *RecordPropertyViewUseCase {
	return &RecordPropertyViewUseCase{properties: properties}
}

func (uc *RecordPropertyViewUseCase) Execute(ctx context.Context, propertyID string) (int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "RecordPropertyView",
		"property_id": propertyID,
	})

	ucLogger.Debug("Use case started", nil)

	views, err := uc.properties.IncrementViews(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Failed to increment view count", err, nil)
		return 0, fmt.Errorf("failed to record view for property %s: %w", propertyID, err)
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"view_count": views})
	return views, nil
}
