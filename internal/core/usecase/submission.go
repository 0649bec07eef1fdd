package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

// DefaultSubmitTimeout ограничивает сохранение нового объявления.
const DefaultSubmitTimeout = 5 * time.Second

// updateOwnDraft выполняет действие над черновиком продавца и возвращает его снимок.
func updateOwnDraft(ctx context.Context, drafts port.DraftStorePort, sellerID, draftID string, action func(w *domain.SubmissionWorkflow) error) (*domain.SubmissionSnapshot, error) {
	var snapshot domain.SubmissionSnapshot
	err := drafts.Update(ctx, draftID, func(w *domain.SubmissionWorkflow) error {
		if w.SellerID() != sellerID {
			return domain.ErrForbidden
		}
		if err := action(w); err != nil {
			return err
		}
		snapshot = w.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

type StartSubmissionUseCase struct {
	drafts port.DraftStorePort
}

func NewStartSubmissionUseCase(drafts port.DraftStorePort) *StartSubmissionUseCase {
	return &StartSubmissionUseCase{drafts: drafts}
}

// Execute открывает новую форму подачи. lenient - переход между шагами без проверки полей.
func (uc *StartSubmissionUseCase) Execute(ctx context.Context, sellerID string, lenient bool) (*domain.SubmissionSnapshot, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "StartSubmission",
		"seller_id": sellerID,
		"lenient":   lenient,
	})

	ucLogger.Info("Use case started", nil)

	var opts []domain.WorkflowOption
	if lenient {
		opts = append(opts, domain.WithLenientNavigation())
	}
	w := domain.NewSubmissionWorkflow(sellerID, opts...)

	if err := uc.drafts.Create(ctx, w); err != nil {
		ucLogger.Error("Failed to store submission draft", err, nil)
		return nil, fmt.Errorf("failed to start submission: %w", err)
	}

	snapshot := w.Snapshot()
	ucLogger.Info("Use case finished successfully", port.Fields{"draft_id": snapshot.ID})
	return &snapshot, nil
}

type UpdateSubmissionDraftUseCase struct {
	drafts port.DraftStorePort
}

func NewUpdateSubmissionDraftUseCase(drafts port.DraftStorePort) *UpdateSubmissionDraftUseCase {
	return &UpdateSubmissionDraftUseCase{drafts: drafts}
}

func (uc *UpdateSubmissionDraftUseCase) Execute(ctx context.Context, sellerID, draftID string, draft domain.SubmissionDraft) (*domain.SubmissionSnapshot, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "UpdateSubmissionDraft",
		"seller_id": sellerID,
		"draft_id":  draftID,
	})

	ucLogger.Debug("Use case started", nil)

	snapshot, err := updateOwnDraft(ctx, uc.drafts, sellerID, draftID, func(w *domain.SubmissionWorkflow) error {
		return w.UpdateDraft(draft)
	})
	if err != nil {
		ucLogger.Info("Draft update rejected", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Debug("Use case finished successfully", nil)
	return snapshot, nil
}

type NextSubmissionStepUseCase struct {
	drafts port.DraftStorePort
}

func NewNextSubmissionStepUseCase(drafts port.DraftStorePort) *NextSubmissionStepUseCase {
	return &NextSubmissionStepUseCase{drafts: drafts}
}

func (uc *NextSubmissionStepUseCase) Execute(ctx context.Context, sellerID, draftID string) (*domain.SubmissionSnapshot, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "NextSubmissionStep",
		"seller_id": sellerID,
		"draft_id":  draftID,
	})

	ucLogger.Debug("Use case started", nil)

	snapshot, err := updateOwnDraft(ctx, uc.drafts, sellerID, draftID, (*domain.SubmissionWorkflow).Next)
	if err != nil {
		ucLogger.Info("Step change rejected", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"step": snapshot.Step})
	return snapshot, nil
}

type PreviousSubmissionStepUseCase struct {
	drafts port.DraftStorePort
}

func NewPreviousSubmissionStepUseCase(drafts port.DraftStorePort) *PreviousSubmissionStepUseCase {
	return &PreviousSubmissionStepUseCase{drafts: drafts}
}

func (uc *PreviousSubmissionStepUseCase) Execute(ctx context.Context, sellerID, draftID string) (*domain.SubmissionSnapshot, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "PreviousSubmissionStep",
		"seller_id": sellerID,
		"draft_id":  draftID,
	})

	ucLogger.Debug("Use case started", nil)

	snapshot, err := updateOwnDraft(ctx, uc.drafts, sellerID, draftID, (*domain.SubmissionWorkflow).Previous)
	if err != nil {
		ucLogger.Info("Step change rejected", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"step": snapshot.Step})
	return snapshot, nil
}

type ResetSubmissionUseCase struct {
	drafts port.DraftStorePort
}

func NewResetSubmissionUseCase(drafts port.DraftStorePort) *ResetSubmissionUseCase {
	return &ResetSubmissionUseCase{drafts: drafts}
}

func (uc *ResetSubmissionUseCase) Execute(ctx context.Context, sellerID, draftID string) (*domain.SubmissionSnapshot, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "ResetSubmission",
		"seller_id": sellerID,
		"draft_id":  draftID,
	})

	ucLogger.Info("Use case started", nil)

	snapshot, err := updateOwnDraft(ctx, uc.drafts, sellerID, draftID, func(w *domain.SubmissionWorkflow) error {
		w.Reset()
		return nil
	})
	if err != nil {
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return snapshot, nil
}

type SubmitPropertyUseCase struct {
	drafts     port.DraftStorePort
	properties port.PropertyRepositoryPort
	events     port.PropertyEventPublisherPort
	timeout    time.Duration
}

func NewSubmitPropertyUseCase(drafts port.DraftStorePort, properties port.PropertyRepositoryPort, events port.PropertyEventPublisherPort, timeout time.Duration) *SubmitPropertyUseCase {
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}
	return &SubmitPropertyUseCase{drafts: drafts, properties: properties, events: events, timeout: timeout}
}

// Execute отправляет заполненную форму: объявление сохраняется со статусом pending.
// Ошибка или таймаут сохранения оставляют форму на шаге review с нетронутым черновиком.
func (uc *SubmitPropertyUseCase) Execute(ctx context.Context, sellerID, draftID string) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "SubmitProperty",
		"seller_id": sellerID,
		"draft_id":  draftID,
	})

	ucLogger.Info("Use case started", nil)

	var property domain.Property
	err := uc.drafts.Update(ctx, draftID, func(w *domain.SubmissionWorkflow) error {
		if w.SellerID() != sellerID {
			return domain.ErrForbidden
		}
		p, err := w.Submit(ctx, uc.insert)
		if err != nil {
			return err
		}
		property = p
		return nil
	})
	if err != nil {
		ucLogger.Warn("Submission rejected", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.events.PublishSubmitted(ctx, property); err != nil {
		ucLogger.Warn("Failed to publish property submitted event", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": property.ID})
	return &property, nil
}

func (uc *SubmitPropertyUseCase) insert(ctx context.Context, p domain.Property) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.properties.Insert(ctx, p)
}
