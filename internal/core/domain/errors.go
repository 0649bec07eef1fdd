package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Определяем переменные-ошибки, которые могут быть возвращены из Use Cases.
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrInquiryNotFound  = errors.New("inquiry not found")
	ErrDraftNotFound    = errors.New("submission draft not found")
	ErrForbidden        = errors.New("action is not allowed for this user")

	ErrValidation              = errors.New("validation failed")
	ErrInvalidTransition       = errors.New("invalid state transition")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrAlreadySubmitted        = errors.New("submission already completed")
	ErrSubmissionFailed        = errors.New("submission failed")
	ErrStatusConflict          = errors.New("property status was changed concurrently")
)

// ValidationErrors - ошибки валидации по полям: имя поля -> сообщение.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// OrNil возвращает nil, если ошибок нет. Удобно для `return errs.OrNil()`.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// TransitionError - попытка недопустимого перехода состояния.
// Это ошибка вызывающего кода (нарушение предусловия), а не пользовательская.
type TransitionError struct {
	Entity string
	From   string
	Action string
	Cause  error
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("%s: cannot %s %s in state %q", ErrInvalidTransition, e.Action, e.Entity, e.From)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *TransitionError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrInvalidTransition, e.Cause}
	}
	return []error{ErrInvalidTransition}
}
