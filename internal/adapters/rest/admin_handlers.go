package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port/usecases_port"
)

// AdminHandler - модерация объявлений и сводка по площадке.
type AdminHandler struct {
	listByStatusUC usecases_port.ListPropertiesByStatusUseCase
	approveUC      usecases_port.ApprovePropertyUseCase
	rejectUC       usecases_port.RejectPropertyUseCase
	dashboardUC    usecases_port.GetAdminDashboardUseCase
	listUsersUC    usecases_port.ListUsersUseCase
	deleteUC       usecases_port.DeletePropertyUseCase
	setRoleUC      usecases_port.SetUserRoleUseCase
	deleteUserUC   usecases_port.DeleteUserUseCase
}

func NewAdminHandler(listByStatusUC usecases_port.ListPropertiesByStatusUseCase,
	approveUC usecases_port.ApprovePropertyUseCase,
	rejectUC usecases_port.RejectPropertyUseCase,
	dashboardUC usecases_port.GetAdminDashboardUseCase,
	listUsersUC usecases_port.ListUsersUseCase,
	deleteUC usecases_port.DeletePropertyUseCase,
	setRoleUC usecases_port.SetUserRoleUseCase,
	deleteUserUC usecases_port.DeleteUserUseCase) *AdminHandler {
	return &AdminHandler{
		listByStatusUC: listByStatusUC,
		approveUC:      approveUC,
		rejectUC:       rejectUC,
		dashboardUC:    dashboardUC,
		listUsersUC:    listUsersUC,
		deleteUC:       deleteUC,
		setRoleUC:      setRoleUC,
		deleteUserUC:   deleteUserUC,
	}
}

// ListProperties обрабатывает GET /api/v1/admin/properties?status=pending
func (h *AdminHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	_, logger, ok := actorContext(w, r, "ListPropertiesByStatus")
	if !ok {
		return
	}

	status := domain.PropertyStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.StatusPending
	}

	props, err := h.listByStatusUC.Execute(r.Context(), status)
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, PropertyListResponse{Total: len(props), Data: toPropertyCards(props)})
}

// ApproveProperty обрабатывает POST /api/v1/admin/properties/{propertyID}/approve
func (h *AdminHandler) ApproveProperty(w http.ResponseWriter, r *http.Request) {
	adminID, logger, ok := actorContext(w, r, "ApproveProperty")
	if !ok {
		return
	}

	p, err := h.approveUC.Execute(r.Context(), adminID, chi.URLParam(r, "propertyID"))
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyCard(*p))
}

// RejectProperty обрабатывает POST /api/v1/admin/properties/{propertyID}/reject
func (h *AdminHandler) RejectProperty(w http.ResponseWriter, r *http.Request) {
	adminID, logger, ok := actorContext(w, r, "RejectProperty")
	if !ok {
		return
	}

	var req RejectPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.rejectUC.Execute(r.Context(), adminID, chi.URLParam(r, "propertyID"), req.Reason)
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyCard(*p))
}

// GetDashboard обрабатывает GET /api/v1/admin/dashboard
func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	_, logger, ok := actorContext(w, r, "GetAdminDashboard")
	if !ok {
		return
	}

	dashboard, err := h.dashboardUC.Execute(r.Context())
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, dashboard)
}

// ListUsers обрабатывает GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	_, logger, ok := actorContext(w, r, "ListUsers")
	if !ok {
		return
	}

	users, err := h.listUsersUC.Execute(r.Context())
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	RespondWithJSON(w, http.StatusOK, UserListResponse{Total: len(users), Data: users})
}

// DeleteProperty обрабатывает DELETE /api/v1/admin/properties/{propertyID}
func (h *AdminHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	deleteProperty(h.deleteUC)(w, r)
}

// SetUserRole обрабатывает PATCH /api/v1/admin/users/{userID}/role
func (h *AdminHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	adminID, logger, ok := actorContext(w, r, "SetUserRole")
	if !ok {
		return
	}

	var req SetUserRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.setRoleUC.Execute(r.Context(), adminID, chi.URLParam(r, "userID"), domain.UserRole(req.Role))
	if err != nil {
		respondWithError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, u)
}

// DeleteUser обрабатывает DELETE /api/v1/admin/users/{userID}
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	adminID, logger, ok := actorContext(w, r, "DeleteUser")
	if !ok {
		return
	}

	if err := h.deleteUserUC.Execute(r.Context(), adminID, chi.URLParam(r, "userID")); err != nil {
		respondWithError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
