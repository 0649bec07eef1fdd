package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port/usecases_port"
)

// SellerHandler - кабинет продавца: объявления, статистика, заявки.
type SellerHandler struct {
	propertiesUC    usecases_port.GetSellerPropertiesUseCase
	dashboardUC     usecases_port.GetSellerDashboardUseCase
	inquiriesUC     usecases_port.GetSellerInquiriesUseCase
	inquiryStatusUC usecases_port.UpdateInquiryStatusUseCase
	archiveUC       usecases_port.ArchivePropertyUseCase
	resubmitUC      usecases_port.ResubmitPropertyUseCase
	deleteUC        usecases_port.DeletePropertyUseCase
	profileUC       usecases_port.GetProfileUseCase
	updateProfileUC usecases_port.UpdateProfileUseCase
}

func NewSellerHandler(propertiesUC usecases_port.GetSellerPropertiesUseCase,
	dashboardUC usecases_port.GetSellerDashboardUseCase,
	inquiriesUC usecases_port.GetSellerInquiriesUseCase,
	inquiryStatusUC usecases_port.UpdateInquiryStatusUseCase,
	archiveUC usecases_port.ArchivePropertyUseCase,
	resubmitUC usecases_port.ResubmitPropertyUseCase,
	deleteUC usecases_port.DeletePropertyUseCase,
	profileUC usecases_port.GetProfileUseCase,
	updateProfileUC usecases_port.UpdateProfileUseCase) *SellerHandler {
	return &SellerHandler{
		propertiesUC:    propertiesUC,
		dashboardUC:     dashboardUC,
		inquiriesUC:     inquiriesUC,
		inquiryStatusUC: inquiryStatusUC,
		archiveUC:       archiveUC,
		resubmitUC:      resubmitUC,
		deleteUC:        deleteUC,
		profileUC:       profileUC,
		updateProfileUC: updateProfileUC,
	}
}

// actorContext достает пользователя из контекста. Маршруты закрыты AuthMiddleware,
// поэтому отсутствие пользователя - ошибка конфигурации роутера.
func actorContext(w http.ResponseWriter, r *http.Request, handler string) (string, port.LoggerPort, bool) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return "", nil, false
	}
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": handler,
		"user_id": identity.UserID,
	})
	return identity.UserID, logger, true
}

// GetProperties обрабатывает GET /api/v1/seller/properties?status=
func (h *SellerHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	sellerID, logger, ok := actorContext(w, r, "GetSellerProperties")
	if !ok {
		return
	}

	status := domain.PropertyStatus(r.URL.Query().Get("status"))
	props, err := h.propertiesUC.Execute(r.Context(), sellerID, status)
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, PropertyListResponse{Total: len(props), Data: toPropertyCards(props)})
}

// GetDashboard обрабатывает GET /api/v1/seller/dashboard
func (h *SellerHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	sellerID, logger, ok := actorContext(w, r, "GetSellerDashboard")
	if !ok {
		return
	}

	dashboard, err := h.dashboardUC.Execute(r.Context(), sellerID)
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	dashboard.RecentInquiries = nonNilInquiries(dashboard.RecentInquiries)
	RespondWithJSON(w, http.StatusOK, dashboard)
}

// GetInquiries обрабатывает GET /api/v1/seller/inquiries
func (h *SellerHandler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	sellerID, logger, ok := actorContext(w, r, "GetSellerInquiries")
	if !ok {
		return
	}

	inquiries, err := h.inquiriesUC.Execute(r.Context(), sellerID)
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InquiryListResponse{Total: len(inquiries), Data: nonNilInquiries(inquiries)})
}

// UpdateInquiryStatus обрабатывает PATCH /api/v1/seller/inquiries/{inquiryID}
func (h *SellerHandler) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	sellerID, logger, ok := actorContext(w, r, "UpdateInquiryStatus")
	if !ok {
		return
	}

	var req UpdateInquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	status := domain.InquiryStatus(req.Status)
	if !status.IsValid() {
		respondWithError(w, logger, domain.ValidationErrors{"status": "Must be new, contacted or closed"})
		return
	}

	inquiry, err := h.inquiryStatusUC.Execute(r.Context(), sellerID, chi.URLParam(r, "inquiryID"), status)
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, inquiry)
}

// ArchiveProperty обрабатывает POST /api/v1/seller/properties/{propertyID}/archive
func (h *SellerHandler) ArchiveProperty(w http.ResponseWriter, r *http.Request) {
	sellerID, logger, ok := actorContext(w, r, "ArchiveProperty")
	if !ok {
		return
	}

	p, err := h.archiveUC.Execute(r.Context(), sellerID, chi.URLParam(r, "propertyID"))
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyCard(*p))
}

// ResubmitProperty обрабатывает POST /api/v1/seller/properties/{propertyID}/resubmit
func (h *SellerHandler) ResubmitProperty(w http.ResponseWriter, r *http.Request) {
	sellerID, logger, ok := actorContext(w, r, "ResubmitProperty")
	if !ok {
		return
	}

	p, err := h.resubmitUC.Execute(r.Context(), sellerID, chi.URLParam(r, "propertyID"))
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyCard(*p))
}

// deleteProperty - удаление объявления для кабинета продавца и для модерации.
// Права проверяет use case по роли из заголовков.
func deleteProperty(uc usecases_port.DeletePropertyUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, logger, ok := actorContext(w, r, "DeleteProperty")
		if !ok {
			return
		}
		identity, _ := identityFromContext(r.Context())

		if err := uc.Execute(r.Context(), actorID, identity.Role, chi.URLParam(r, "propertyID")); err != nil {
			respondWithError(w, logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteProperty обрабатывает DELETE /api/v1/seller/properties/{propertyID}
func (h *SellerHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	deleteProperty(h.deleteUC)(w, r)
}

// GetProfile обрабатывает GET /api/v1/seller/profile
func (h *SellerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := actorContext(w, r, "GetProfile")
	if !ok {
		return
	}

	u, err := h.profileUC.Execute(r.Context(), userID)
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, u)
}

// UpdateProfile обрабатывает PUT /api/v1/seller/profile
func (h *SellerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := actorContext(w, r, "UpdateProfile")
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.updateProfileUC.Execute(r.Context(), userID, domain.ProfileUpdate{
		Name:   req.Name,
		Phone:  req.Phone,
		Bio:    req.Bio,
		Avatar: req.Avatar,
	})
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, u)
}
