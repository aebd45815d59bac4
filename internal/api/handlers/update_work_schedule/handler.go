package update_work_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/service/schedules"
)

const (
	msgInvalidMasterID    = "некорректный ID мастера"
	msgInvalidWeekday     = "некорректный день недели"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные расписания"
	msgNotFound           = "расписание не найдено"
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

// Handle PUT /api/v1/masters/{masterId}/schedule/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	masterID, err := strconv.ParseInt(vars["masterId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /masters/{id}/schedule/{weekday} - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	weekday, err := strconv.Atoi(vars["weekday"])
	if err != nil {
		h.logger.Warn("PUT /masters/{id}/schedule/{weekday} - Invalid weekday: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return
	}

	var req UpdateWorkScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /masters/{id}/schedule/{weekday} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(masterID, weekday))
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("PUT /masters/{id}/schedule/{weekday} - Invalid data: master_id=%d, error=%v", masterID, err)
			handlers.RespondErrorWithReason(w, http.StatusBadRequest, msgInvalidData, err.Error())

		case errors.Is(err, schedules.ErrScheduleNotFound), errors.Is(err, schedules.ErrMasterNotFound):
			h.logger.Warn("PUT /masters/{id}/schedule/{weekday} - Not found: master_id=%d, weekday=%d", masterID, weekday)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /masters/{id}/schedule/{weekday} - Failed to update schedule: master_id=%d, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /masters/{id}/schedule/{weekday} - Schedule updated successfully: master_id=%d, weekday=%d",
		masterID, weekday)
	handlers.RespondJSON(w, http.StatusOK, result)
}
