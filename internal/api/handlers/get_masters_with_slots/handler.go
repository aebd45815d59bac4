package get_masters_with_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
	getMastersWithSlots "github.com/m04kA/SalonBookingService/internal/usecase/get_masters_with_slots"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

const (
	msgInvalidServiceIDs = "некорректный список услуг, ожидается service_ids=1,2"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams     = "некорректные параметры запроса"
	msgServiceNotFound   = "услуга не найдена"
	msgDateInPast        = "дата уже прошла"
)

type Handler struct {
	useCase GetMastersWithSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetMastersWithSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/masters-with-slots
// Query params: service_ids (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceIDs, err := handlers.ParseIDList(r.URL.Query().Get("service_ids"))
	if err != nil {
		h.logger.Warn("GET /services/masters-with-slots - Invalid service ids: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceIDs)
		return
	}

	date, err := types.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /services/masters-with-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMastersWithSlots.Request{ServiceIDs: serviceIDs, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrInputFormat):
			h.logger.Warn("GET /services/masters-with-slots - Invalid params: %v", err)
			handlers.RespondErrorWithReason(w, http.StatusBadRequest, msgInvalidParams, err.Error())

		case errors.Is(err, getMastersWithSlots.ErrDateInPast):
			h.logger.Warn("GET /services/masters-with-slots - Date in past: date=%s", date)
			handlers.RespondUnprocessable(w, msgDateInPast)

		case errors.Is(err, scheduling.ErrNotFound):
			h.logger.Warn("GET /services/masters-with-slots - Service not found: service_ids=%v", serviceIDs)
			handlers.RespondErrorWithReason(w, http.StatusNotFound, msgServiceNotFound, err.Error())

		default:
			h.logger.Error("GET /services/masters-with-slots - Failed to get masters: service_ids=%v, error=%v", serviceIDs, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/masters-with-slots - Masters retrieved successfully: date=%s, masters_count=%d",
		date, len(result.Masters))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
