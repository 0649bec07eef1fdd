package rest

import (
	"errors"
	"net/http"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

// statusForError сопоставляет ошибку use case с HTTP-статусом и текстом для клиента.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrRejectionReasonRequired):
		return http.StatusUnprocessableEntity, "Rejection reason is required"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, "Validation failed"
	case errors.Is(err, domain.ErrPropertyNotFound):
		return http.StatusNotFound, "Property not found"
	case errors.Is(err, domain.ErrInquiryNotFound):
		return http.StatusNotFound, "Inquiry not found"
	case errors.Is(err, domain.ErrDraftNotFound):
		return http.StatusNotFound, "Submission draft not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Action is not allowed"
	case errors.Is(err, domain.ErrAlreadySubmitted):
		return http.StatusConflict, "Submission already completed"
	case errors.Is(err, domain.ErrStatusConflict):
		return http.StatusConflict, "Property status was changed by another request"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, "Action is not allowed in the current state"
	case errors.Is(err, domain.ErrSubmissionFailed):
		return http.StatusServiceUnavailable, "Failed to save the property, please retry"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondWithError пишет ответ об ошибке. Для ошибок валидации добавляет поля.
// 5xx логируются как Error, остальное как Warn.
func respondWithError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	code, message := statusForError(err)

	if code >= http.StatusInternalServerError {
		logger.Error("Use case failed", err, port.Fields{"status_code": code})
	} else {
		logger.Warn("Request rejected", port.Fields{"status_code": code, "error": err.Error()})
	}

	resp := ErrorResponse{Error: message}
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		resp.Fields = verrs
	} else if errors.Is(err, domain.ErrRejectionReasonRequired) {
		resp.Fields = map[string]string{"reason": message}
	}
	RespondWithJSON(w, code, resp)
}
