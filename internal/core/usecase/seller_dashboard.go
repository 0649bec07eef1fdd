package usecase

import (
	"context"
	"fmt"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

// sellerInquiries загружает объявления продавца и все заявки по ним.
func sellerInquiries(ctx context.Context, properties port.PropertyRepositoryPort, inquiries port.InquiryRepositoryPort, sellerID string) ([]domain.Property, []domain.Inquiry, error) {
	props, err := properties.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list seller properties: %w", err)
	}
	if len(props) == 0 {
		return props, []domain.Inquiry{}, nil
	}

	ids := make([]string, 0, len(props))
	for _, p := range props {
		ids = append(ids, p.ID)
	}

	inqs, err := inquiries.ListByProperties(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return props, inqs, nil
}

type GetSellerDashboardUseCase struct {
	properties port.PropertyRepositoryPort
	inquiries  port.InquiryRepositoryPort
}

func NewGetSellerDashboardUseCase(properties port.PropertyRepositoryPort, inquiries port.InquiryRepositoryPort) *GetSellerDashboardUseCase {
	return &GetSellerDashboardUseCase{properties: properties, inquiries: inquiries}
}

func (uc *GetSellerDashboardUseCase) Execute(ctx context.Context, sellerID string) (*domain.SellerDashboard, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "GetSellerDashboard",
		"seller_id": sellerID,
	})

	ucLogger.Info("Use case started", nil)

	props, inqs, err := sellerInquiries(ctx, uc.properties, uc.inquiries, sellerID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	dashboard := domain.BuildSellerDashboard(props, inqs)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_properties": dashboard.TotalProperties,
		"total_inquiries":  dashboard.TotalInquiries,
	})
	return &dashboard, nil
}

type GetSellerInquiriesUseCase struct {
	properties port.PropertyRepositoryPort
	inquiries  port.InquiryRepositoryPort
}

func NewGetSellerInquiriesUseCase(properties port.PropertyRepositoryPort, inquiries port.InquiryRepositoryPort) *GetSellerInquiriesUseCase {
	return &GetSellerInquiriesUseCase{properties: properties, inquiries: inquiries}
}

// Execute возвращает заявки по всем объявлениям продавца, самые новые первыми.
func (uc *GetSellerInquiriesUseCase) Execute(ctx context.Context, sellerID string) ([]domain.Inquiry, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "GetSellerInquiries",
		"seller_id": sellerID,
	})

	ucLogger.Info("Use case started", nil)

	_, inqs, err := sellerInquiries(ctx, uc.properties, uc.inquiries, sellerID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	result := domain.RecentInquiries(inqs, len(inqs))

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(result)})
	return result, nil
}

type UpdateInquiryStatusUseCase struct {
	properties port.PropertyRepositoryPort
	inquiries  port.InquiryRepositoryPort
}

func NewUpdateInquiryStatusUseCase(properties port.PropertyRepositoryPort, inquiries port.InquiryRepositoryPort) *UpdateInquiryStatusUseCase {
	return &UpdateInquiryStatusUseCase{properties: properties, inquiries: inquiries}
}

// Execute двигает заявку вперед по статусам. Продавец может менять только заявки по своим объявлениям.
func (uc *UpdateInquiryStatusUseCase) Execute(ctx context.Context, sellerID, inquiryID string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateInquiryStatus",
		"seller_id":  sellerID,
		"inquiry_id": inquiryID,
		"status":     status,
	})

	ucLogger.Info("Use case started", nil)

	inq, err := uc.inquiries.GetByID(ctx, inquiryID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}
	if inq == nil {
		return nil, domain.ErrInquiryNotFound
	}

	p, err := uc.properties.Get(ctx, inq.PropertyID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if p == nil || p.SellerID != sellerID {
		ucLogger.Warn("Inquiry does not belong to seller", nil)
		return nil, domain.ErrForbidden
	}

	if err := inq.Advance(status); err != nil {
		return nil, err
	}

	if err := uc.inquiries.UpdateStatus(ctx, inq.ID, inq.Status); err != nil {
		ucLogger.Error("Failed to save inquiry status", err, nil)
		return nil, fmt.Errorf("failed to update inquiry status: %w", err)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return inq, nil
}
