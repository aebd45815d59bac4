package get_work_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/service/schedules"
)

const (
	msgInvalidMasterID = "некорректный ID мастера"
	msgMasterNotFound  = "мастер не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/masters/{masterId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	masterID, err := strconv.ParseInt(mux.Vars(r)["masterId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/schedule - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	result, err := h.service.GetWeek(r.Context(), masterID)
	if err != nil {
		if errors.Is(err, schedules.ErrMasterNotFound) {
			h.logger.Warn("GET /masters/{id}/schedule - Master not found: master_id=%d", masterID)
			handlers.RespondNotFound(w, msgMasterNotFound)
			return
		}
		h.logger.Error("GET /masters/{id}/schedule - Failed to get schedule: master_id=%d, error=%v", masterID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /masters/{id}/schedule - Schedule retrieved successfully: master_id=%d, days=%d",
		masterID, len(result.Schedules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
