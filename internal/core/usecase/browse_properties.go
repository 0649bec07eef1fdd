package usecase

import (
	"context"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

type BrowsePropertiesUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewBrowsePropertiesUseCase(properties port.PropertyRepositoryPort) *BrowsePropertiesUseCase {
	return &BrowsePropertiesUseCase{properties: properties}
}

// Execute - фильтрация, сортировка и пагинация каталога.
// Хранилище может заранее сузить выборку, но итог всегда считает domain.Browse.
func (uc *BrowsePropertiesUseCase) Execute(ctx context.Context, state domain.BrowseState) (*domain.Page[domain.Property], error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "BrowseProperties",
		"filters":   state.Filters,
		"sort":      state.Sort,
		"page":      state.Page,
		"page_size": state.PageSize,
	})

	ucLogger.Info("Use case started", nil)

	candidates, err := uc.properties.ListMatching(ctx, state.Filters)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	page := domain.Browse(candidates, state)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   page.TotalItems,
		"items_on_page": len(page.Items),
	})

	return &page, nil
}
