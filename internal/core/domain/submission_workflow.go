package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SubmissionSink принимает готовое объявление (обычно - вставка в репозиторий).
type SubmissionSink func(ctx context.Context, p Property) error

// SubmissionWorkflow - пошаговая форма подачи объявления.
// Не потокобезопасна: владелец (хранилище черновиков) сериализует доступ.
type SubmissionWorkflow struct {
	id        string
	sellerID  string
	step      int
	draft     SubmissionDraft
	submitted *Property

	strict    bool
	clock     func() time.Time
	newID     func() string
	updatedAt time.Time
}

type WorkflowOption func(*SubmissionWorkflow)

// WithLenientNavigation отключает проверку шага при переходе вперед.
// Полная проверка при отправке выполняется в любом случае.
func WithLenientNavigation() WorkflowOption {
	return func(w *SubmissionWorkflow) { w.strict = false }
}

func WithClock(clock func() time.Time) WorkflowOption {
	return func(w *SubmissionWorkflow) {
		if clock != nil {
			w.clock = clock
		}
	}
}

func WithIDGenerator(gen func() string) WorkflowOption {
	return func(w *SubmissionWorkflow) {
		if gen != nil {
			w.newID = gen
		}
	}
}

func NewSubmissionWorkflow(sellerID string, opts ...WorkflowOption) *SubmissionWorkflow {
	w := &SubmissionWorkflow{
		sellerID: sellerID,
		draft:    NewSubmissionDraft(),
		strict:   true,
		clock:    time.Now,
		newID:    func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(w)
	}
	w.id = w.newID()
	w.updatedAt = w.clock()
	return w
}

func (w *SubmissionWorkflow) ID() string { return w.id }
func (w *SubmissionWorkflow) SellerID() string { return w.sellerID }
func (w *SubmissionWorkflow) StepIndex() int { return w.step }
func (w *SubmissionWorkflow) IsStrict() bool { return w.strict }

func (w *SubmissionWorkflow) Step() SubmissionStep {
	return SubmissionSteps[w.step]
}

func (w *SubmissionWorkflow) UpdatedAt() time.Time { return w.updatedAt }

// Draft возвращает копию текущего черновика.
func (w *SubmissionWorkflow) Draft() SubmissionDraft {
	return w.draft.clone()
}

// Submitted возвращает отправленное объявление, если форма уже отправлена.
func (w *SubmissionWorkflow) Submitted() (Property, bool) {
	if w.submitted == nil {
		return Property{}, false
	}
	return w.submitted.Clone(), true
}

func (w *SubmissionWorkflow) IsSubmitted() bool {
	return w.submitted != nil
}

func (w *SubmissionWorkflow) state() string {
	if w.submitted != nil {
		return "submitted"
	}
	return string(w.Step())
}

func (w *SubmissionWorkflow) alreadySubmitted(action string) error {
	return &TransitionError{Entity: "submission", From: w.state(), Action: action, Cause: ErrAlreadySubmitted}
}

// UpdateDraft заменяет черновик целиком. Шаг не меняется.
func (w *SubmissionWorkflow) UpdateDraft(d SubmissionDraft) error {
	if w.submitted != nil {
		return w.alreadySubmitted("edit")
	}
	w.draft = d.clone()
	w.updatedAt = w.clock()
	return nil
}

// Next переходит к следующему шагу. В строгом режиме сначала проверяются поля текущего шага.
func (w *SubmissionWorkflow) Next() error {
	if w.submitted != nil {
		return w.alreadySubmitted("advance")
	}
	if w.step == len(SubmissionSteps)-1 {
		return &TransitionError{Entity: "submission", From: w.state(), Action: "advance"}
	}
	if w.strict {
		if err := w.draft.ValidateStep(w.Step()).OrNil(); err != nil {
			return err
		}
	}
	w.step++
	w.updatedAt = w.clock()
	return nil
}

// Previous возвращается на шаг назад без проверок. На первом шаге ничего не делает.
func (w *SubmissionWorkflow) Previous() error {
	if w.submitted != nil {
		return w.alreadySubmitted("go back")
	}
	if w.step > 0 {
		w.step--
		w.updatedAt = w.clock()
	}
	return nil
}

// Submit проверяет черновик целиком и передает объявление в sink.
// При ошибке sink форма остается на шаге review и отправку можно повторить.
func (w *SubmissionWorkflow) Submit(ctx context.Context, sink SubmissionSink) (Property, error) {
	if w.submitted != nil {
		return Property{}, w.alreadySubmitted("submit")
	}
	if w.Step() != StepReview {
		return Property{}, &TransitionError{Entity: "submission", From: w.state(), Action: "submit"}
	}
	if err := w.draft.Validate(); err != nil {
		return Property{}, err
	}

	p := w.draft.ToProperty(w.newID(), w.sellerID, w.clock())
	if err := sink(ctx, p.Clone()); err != nil {
		return Property{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	w.submitted = &p
	w.updatedAt = w.clock()
	return p.Clone(), nil
}

// Reset начинает форму заново: первый шаг, значения по умолчанию.
func (w *SubmissionWorkflow) Reset() {
	w.step = 0
	w.draft = NewSubmissionDraft()
	w.submitted = nil
	w.updatedAt = w.clock()
}
