package get_busy_slots

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

const (
	msgInvalidMasterID = "некорректный ID мастера"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/masters/{masterId}/busy-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	masterID, err := strconv.ParseInt(mux.Vars(r)["masterId"], 10, 64)
	if err != nil || masterID <= 0 {
		h.logger.Warn("GET /masters/{id}/busy-slots - Invalid master ID: %q", mux.Vars(r)["masterId"])
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	date, err := types.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /masters/{id}/busy-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.BusySlots(r.Context(), masterID, date)
	if err != nil {
		h.logger.Error("GET /masters/{id}/busy-slots - Failed: master_id=%d, error=%v", masterID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /masters/{id}/busy-slots - Busy time retrieved: master_id=%d, date=%s, intervals=%d, all_day=%t",
		masterID, date, len(result.Busy), result.AllDay)
	handlers.RespondJSON(w, http.StatusOK, result)
}
