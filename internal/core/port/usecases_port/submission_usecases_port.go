package usecases_port

import (
	"context"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

type StartSubmissionUseCase interface {
	Execute(ctx context.Context, sellerID string, lenient bool) (*domain.SubmissionSnapshot, error)
}

type UpdateSubmissionDraftUseCase interface {
	Execute(ctx context.Context, sellerID, draftID string, draft domain.SubmissionDraft) (*domain.SubmissionSnapshot, error)
}

type NextSubmissionStepUseCase interface {
	Execute(ctx context.Context, sellerID, draftID string) (*domain.SubmissionSnapshot, error)
}

type PreviousSubmissionStepUseCase interface {
	Execute(ctx context.Context, sellerID, draftID string) (*domain.SubmissionSnapshot, error)
}

type SubmitPropertyUseCase interface {
	Execute(ctx context.Context, sellerID, draftID string) (*domain.Property, error)
}

type ResetSubmissionUseCase interface {
	Execute(ctx context.Context, sellerID, draftID string) (*domain.SubmissionSnapshot, error)
}
