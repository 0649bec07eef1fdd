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

// PublicHandler - публичный каталог: поиск, карточка объявления, фильтры, заявки.
type PublicHandler struct {
	browseUC        usecases_port.BrowsePropertiesUseCase
	detailsUC       usecases_port.GetPropertyDetailsUseCase
	filterOptionsUC usecases_port.GetFilterOptionsUseCase
	createInquiryUC usecases_port.CreateInquiryUseCase
	pageSize        int
}

func NewPublicHandler(browseUC usecases_port.BrowsePropertiesUseCase,
	detailsUC usecases_port.GetPropertyDetailsUseCase,
	filterOptionsUC usecases_port.GetFilterOptionsUseCase,
	createInquiryUC usecases_port.CreateInquiryUseCase,
	pageSize int) *PublicHandler {
	return &PublicHandler{
		browseUC:        browseUC,
		detailsUC:       detailsUC,
		filterOptionsUC: filterOptionsUC,
		createInquiryUC: createInquiryUC,
		pageSize:        pageSize,
	}
}

// BrowseProperties обрабатывает GET /api/v1/properties
func (h *PublicHandler) BrowseProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "BrowseProperties"})

	state, err := parseBrowseState(r.URL.Query(), h.pageSize)
	if err != nil {
		respondWithError(w, logger, err)
		return
	}

	page, err := h.browseUC.Execute(r.Context(), state)
	if err != nil {
		respondWithError(w, logger, err)
		return
	}

	logger.Debug("Successfully browsed properties", port.Fields{
		"total_found":   page.TotalItems,
		"items_on_page": len(page.Items),
	})

	RespondWithJSON(w, http.StatusOK, toPaginatedResponse(page))
}

// GetPropertyDetails обрабатывает GET /api/v1/properties/{propertyID}
func (h *PublicHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "GetPropertyDetails",
		"property_id": propertyID,
	})

	details, err := h.detailsUC.Execute(r.Context(), propertyID)
	if err != nil {
		respondWithError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, PropertyDetailsResponse{
		Property: details.Property,
		Seller:   toSellerResponse(details.Seller),
		Similar:  toPropertyCards(details.Similar),
	})
}

// GetFilterOptions обрабатывает GET /api/v1/filters/options
func (h *PublicHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFilterOptions"})

	options, err := h.filterOptionsUC.Execute(r.Context())
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, options)
}

// CreateInquiry обрабатывает POST /api/v1/properties/{propertyID}/inquiries.
// Заявку может оставить и анонимный посетитель.
func (h *PublicHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "CreateInquiry",
		"property_id": propertyID,
	})

	var req CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := domain.InquiryInput{
		PropertyID: propertyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
	}
	if identity, ok := identityFromContext(r.Context()); ok {
		input.BuyerID = identity.UserID
	}

	inquiry, err := h.createInquiryUC.Execute(r.Context(), input)
	if err != nil {
		respondWithError(w, logger, err)
		return
	}

	logger.Info("Inquiry created", port.Fields{"inquiry_id": inquiry.ID})
	RespondWithJSON(w, http.StatusCreated, inquiry)
}
