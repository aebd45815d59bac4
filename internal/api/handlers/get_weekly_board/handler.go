package get_weekly_board

import (
	"errors"
	"net/http"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/service/appointments"
	"github.com/m04kA/SalonBookingService/internal/service/appointments/models"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidMasterID  = "некорректный ID мастера"
	msgInvalidServiceID = "некорректный ID услуги"
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

// Handle GET /api/v1/appointments/weekly?date=YYYY-MM-DD&master_id=&service_id=
// Записи недели, содержащей date, по дням с понедельника
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := types.ParseDate(query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /appointments/weekly - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	masterID, err := handlers.ParseOptionalID(query.Get("master_id"))
	if err != nil {
		h.logger.Warn("GET /appointments/weekly - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	serviceID, err := handlers.ParseOptionalID(query.Get("service_id"))
	if err != nil {
		h.logger.Warn("GET /appointments/weekly - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.WeeklyBoard(r.Context(), &models.WeeklyRequest{Date: date, MasterID: masterID, ServiceID: serviceID})
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /appointments/weekly - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /appointments/weekly - Failed to get appointments: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/weekly - Week retrieved successfully: date=%s, days=%d", date, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
