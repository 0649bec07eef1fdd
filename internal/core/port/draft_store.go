package port

import (
	"context"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

// DraftStorePort хранит незавершенные формы подачи объявлений на сервере.
type DraftStorePort interface {
	Create(ctx context.Context, w *domain.SubmissionWorkflow) error
	// Update выполняет fn под блокировкой черновика. Изменения сохраняются,
	// даже если fn вернула ошибку: состояние формы меняет только сам workflow.
	Update(ctx context.Context, id string, fn func(w *domain.SubmissionWorkflow) error) error
	Delete(ctx context.Context, id string) error
}
