package set_service_parents

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/service/catalog"
)

const (
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректный список родительских услуг"
	msgNotFound           = "услуга не найдена"
	msgCycle              = "родительские услуги образуют цикл"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/services/{serviceId}/parents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /services/{id}/parents - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req SetParentsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id}/parents - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	parents, err := h.service.SetParents(r.Context(), serviceID, req.ParentIDs)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /services/{id}/parents - Invalid data: service_id=%d, error=%v", serviceID, err)
			handlers.RespondErrorWithReason(w, http.StatusBadRequest, msgInvalidData, err.Error())

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /services/{id}/parents - Not found: service_id=%d, parents=%v", serviceID, req.ParentIDs)
			handlers.RespondErrorWithReason(w, http.StatusNotFound, msgNotFound, err.Error())

		case errors.Is(err, catalog.ErrCycle):
			h.logger.Warn("PUT /services/{id}/parents - Cycle: service_id=%d, parents=%v", serviceID, req.ParentIDs)
			handlers.RespondErrorWithReason(w, http.StatusUnprocessableEntity, msgCycle, err.Error())

		default:
			h.logger.Error("PUT /services/{id}/parents - Failed to set parents: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services/{id}/parents - Parents updated successfully: service_id=%d, parents=%v", serviceID, parents)
	handlers.RespondJSON(w, http.StatusOK, &ParentsResponse{ServiceID: serviceID, ParentIDs: parents})
}
