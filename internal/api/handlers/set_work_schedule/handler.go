package set_work_schedule

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
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные расписания"
	msgMasterNotFound     = "мастер не найден"
	msgDuplicate          = "у мастера уже есть расписание на этот день недели"
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

// Handle POST /api/v1/masters/{masterId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	masterID, err := strconv.ParseInt(mux.Vars(r)["masterId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /masters/{id}/schedule - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	var req SetWorkScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /masters/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Set(r.Context(), req.ToServiceRequest(masterID))
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("POST /masters/{id}/schedule - Invalid data: master_id=%d, error=%v", masterID, err)
			handlers.RespondErrorWithReason(w, http.StatusBadRequest, msgInvalidData, err.Error())

		case errors.Is(err, schedules.ErrMasterNotFound):
			h.logger.Warn("POST /masters/{id}/schedule - Master not found: master_id=%d", masterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, schedules.ErrDuplicateSchedule):
			h.logger.Warn("POST /masters/{id}/schedule - Duplicate: master_id=%d, weekday=%d", masterID, req.Weekday)
			handlers.RespondConflict(w, msgDuplicate)

		default:
			h.logger.Error("POST /masters/{id}/schedule - Failed to set schedule: master_id=%d, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /masters/{id}/schedule - Schedule created successfully: master_id=%d, weekday=%d, schedule_id=%d",
		masterID, result.Weekday, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
