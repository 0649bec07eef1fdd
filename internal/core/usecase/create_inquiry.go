package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

type CreateInquiryUseCase struct {
	properties port.PropertyRepositoryPort
	inquiries  port.InquiryRepositoryPort
	now        func() time.Time
}

func NewCreateInquiryUseCase(properties port.PropertyRepositoryPort, inquiries port.InquiryRepositoryPort) *CreateInquiryUseCase {
	return &CreateInquiryUseCase{
		properties: properties,
		inquiries:  inquiries,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Execute создает заявку покупателя по одобренному объявлению. Новая заявка всегда в статусе new.
func (uc *CreateInquiryUseCase) Execute(ctx context.Context, input domain.InquiryInput) (*domain.Inquiry, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "CreateInquiry",
		"property_id": input.PropertyID,
	})

	ucLogger.Info("Use case started", nil)

	if err := input.Validate(); err != nil {
		ucLogger.Info("Inquiry input is invalid", port.Fields{"error": err.Error()})
		return nil, err
	}

	p, err := uc.properties.Get(ctx, input.PropertyID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if p == nil || p.Status != domain.StatusApproved {
		return nil, domain.ErrPropertyNotFound
	}

	inq := domain.Inquiry{
		ID:         uuid.NewString(),
		PropertyID: p.ID,
		BuyerID:    input.BuyerID,
		BuyerName:  strings.TrimSpace(input.Name),
		BuyerEmail: strings.TrimSpace(input.Email),
		BuyerPhone: strings.TrimSpace(input.Phone),
		Message:    strings.TrimSpace(input.Message),
		Status:     domain.InquiryNew,
		CreatedAt:  uc.now(),
	}

	if err := uc.inquiries.Create(ctx, inq); err != nil {
		ucLogger.Error("Failed to save inquiry", err, nil)
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"inquiry_id": inq.ID})
	return &inq, nil
}
