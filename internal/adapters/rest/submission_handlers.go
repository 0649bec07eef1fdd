package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port/usecases_port"
)

// SubmissionHandler ведет пошаговую форму подачи объявления.
// Черновик хранится на сервере, клиент работает с ним по draftID.
type SubmissionHandler struct {
	startUC    usecases_port.StartSubmissionUseCase
	updateUC   usecases_port.UpdateSubmissionDraftUseCase
	nextUC     usecases_port.NextSubmissionStepUseCase
	previousUC usecases_port.PreviousSubmissionStepUseCase
	submitUC   usecases_port.SubmitPropertyUseCase
	resetUC    usecases_port.ResetSubmissionUseCase
}

func NewSubmissionHandler(startUC usecases_port.StartSubmissionUseCase,
	updateUC usecases_port.UpdateSubmissionDraftUseCase,
	nextUC usecases_port.NextSubmissionStepUseCase,
	previousUC usecases_port.PreviousSubmissionStepUseCase,
	submitUC usecases_port.SubmitPropertyUseCase,
	resetUC usecases_port.ResetSubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{
		startUC:    startUC,
		updateUC:   updateUC,
		nextUC:     nextUC,
		previousUC: previousUC,
		submitUC:   submitUC,
		resetUC:    resetUC,
	}
}

// Start обрабатывает POST /api/v1/seller/submissions. Тело необязательно.
func (h *SubmissionHandler) Start(w http.ResponseWriter, r *http.Request) {
	sellerID, logger, ok := actorContext(w, r, "StartSubmission")
	if !ok {
		return
	}

	var req StartSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snapshot, err := h.startUC.Execute(r.Context(), sellerID, req.Lenient)
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, snapshot)
}

// UpdateDraft обрабатывает PUT /api/v1/seller/submissions/{draftID}/draft
func (h *SubmissionHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	sellerID, logger, ok := actorContext(w, r, "UpdateSubmissionDraft")
	if !ok {
		return
	}

	var draft domain.SubmissionDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snapshot, err := h.updateUC.Execute(r.Context(), sellerID, chi.URLParam(r, "draftID"), draft)
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, snapshot)
}

// Next обрабатывает POST /api/v1/seller/submissions/{draftID}/next
func (h *SubmissionHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, "NextSubmissionStep", h.nextUC.Execute)
}

// Previous обрабатывает POST /api/v1/seller/submissions/{draftID}/previous
func (h *SubmissionHandler) Previous(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, "PreviousSubmissionStep", h.previousUC.Execute)
}

// Reset обрабатывает POST /api/v1/seller/submissions/{draftID}/reset
func (h *SubmissionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, "ResetSubmission", h.resetUC.Execute)
}

type draftAction func(ctx context.Context, sellerID, draftID string) (*domain.SubmissionSnapshot, error)

func (h *SubmissionHandler) step(w http.ResponseWriter, r *http.Request, handler string, action draftAction) {
	sellerID, logger, ok := actorContext(w, r, handler)
	if !ok {
		return
	}

	snapshot, err := action(r.Context(), sellerID, chi.URLParam(r, "draftID"))
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, snapshot)
}

// Submit обрабатывает POST /api/v1/seller/submissions/{draftID}/submit
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sellerID, logger, ok := actorContext(w, r, "SubmitProperty")
	if !ok {
		return
	}

	p, err := h.submitUC.Execute(r.Context(), sellerID, chi.URLParam(r, "draftID"))
	if err != nil {
		respondWithError(w, logger, err)
		return
	}

	logger.Info("Property submitted for review", port.Fields{"property_id": p.ID})
	RespondWithJSON(w, http.StatusCreated, p)
}
