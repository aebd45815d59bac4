package delete_work_schedule

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
	msgInvalidWeekday  = "некорректный день недели"
	msgNotFound        = "расписание не найдено"
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

// Handle DELETE /api/v1/masters/{masterId}/schedule/{weekday}
// Мастер перестаёт работать в этот день недели
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	masterID, err := strconv.ParseInt(vars["masterId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /masters/{id}/schedule/{weekday} - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	weekday, err := strconv.Atoi(vars["weekday"])
	if err != nil {
		h.logger.Warn("DELETE /masters/{id}/schedule/{weekday} - Invalid weekday: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return
	}

	if err := h.service.Delete(r.Context(), masterID, weekday); err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			h.logger.Warn("DELETE /masters/{id}/schedule/{weekday} - Not found: master_id=%d, weekday=%d", masterID, weekday)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("DELETE /masters/{id}/schedule/{weekday} - Invalid weekday: %d", weekday)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		default:
			h.logger.Error("DELETE /masters/{id}/schedule/{weekday} - Failed to delete schedule: master_id=%d, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /masters/{id}/schedule/{weekday} - Schedule deleted: master_id=%d, weekday=%d", masterID, weekday)
	w.WriteHeader(http.StatusNoContent)
}
