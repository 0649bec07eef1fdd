package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port/usecases_port"
)

// FavoritesHandler - сохраненные объявления пользователя.
type FavoritesHandler struct {
	addUC    usecases_port.AddToFavoritesUseCase
	removeUC usecases_port.RemoveFromFavoritesUseCase
	listUC   usecases_port.GetUserFavoritesUseCase
	idsUC    usecases_port.GetUserFavoriteIDsUseCase
}

func NewFavoritesHandler(addUC usecases_port.AddToFavoritesUseCase,
	removeUC usecases_port.RemoveFromFavoritesUseCase,
	listUC usecases_port.GetUserFavoritesUseCase,
	idsUC usecases_port.GetUserFavoriteIDsUseCase) *FavoritesHandler {
	return &FavoritesHandler{
		addUC:    addUC,
		removeUC: removeUC,
		listUC:   listUC,
		idsUC:    idsUC,
	}
}

// GetFavorites обрабатывает GET /api/v1/seller/favorites?page=
func (h *FavoritesHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := actorContext(w, r, "GetUserFavorites")
	if !ok {
		return
	}

	page := 1
	if s := r.URL.Query().Get("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			respondWithError(w, logger, domain.ValidationErrors{"page": "Must be a positive integer"})
			return
		}
		page = n
	}

	result, err := h.listUC.Execute(r.Context(), userID, page)
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPaginatedResponse(result))
}

// GetFavoriteIDs обрабатывает GET /api/v1/seller/favorites/ids
func (h *FavoritesHandler) GetFavoriteIDs(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := actorContext(w, r, "GetUserFavoriteIDs")
	if !ok {
		return
	}

	ids, err := h.idsUC.Execute(r.Context(), userID)
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	RespondWithJSON(w, http.StatusOK, FavoriteIDsResponse{Data: ids})
}

// AddToFavorites обрабатывает POST /api/v1/seller/favorites/{propertyID}
func (h *FavoritesHandler) AddToFavorites(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := actorContext(w, r, "AddToFavorites")
	if !ok {
		return
	}

	if err := h.addUC.Execute(r.Context(), userID, chi.URLParam(r, "propertyID")); err != nil {
		respondWithError(w, logger, err)
		return
	}
	logger.Info("Property added to favorites", port.Fields{"property_id": chi.URLParam(r, "propertyID")})
	w.WriteHeader(http.StatusNoContent)
}

// RemoveFromFavorites обрабатывает DELETE /api/v1/seller/favorites/{propertyID}
func (h *FavoritesHandler) RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
	userID, logger, ok := actorContext(w, r, "RemoveFromFavorites")
	if !ok {
		return
	}

	if err := h.removeUC.Execute(r.Context(), userID, chi.URLParam(r, "propertyID")); err != nil {
		respondWithError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
