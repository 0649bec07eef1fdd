package usecase

import (
	"context"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

// GetFilterOptionsUseCase отдает справочники для панели фильтров.
type GetFilterOptionsUseCase struct {
	pageSize int
}

func NewGetFilterOptionsUseCase(pageSize int) *GetFilterOptionsUseCase {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &GetFilterOptionsUseCase{pageSize: pageSize}
}

func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (*domain.FilterOptions, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetFilterOptions",
	})

	ucLogger.Info("Use case started", nil)

	options := domain.NewFilterOptions(uc.pageSize)

	ucLogger.Info("Use case finished successfully", nil)
	return &options, nil
}
