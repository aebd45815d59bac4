package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
	getAvailableSlots "github.com/m04kA/SalonBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

const (
	msgInvalidMasterID   = "некорректный ID мастера"
	msgInvalidServiceIDs = "некорректный список услуг, ожидается service_ids=1,2"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams     = "некорректные параметры запроса"
	msgNotFound          = "мастер или услуга не найдены"
	msgNotQualified      = "мастер не выполняет выбранные услуги"
	msgDateInPast        = "дата уже прошла"
	msgDayOff            = "мастер не работает в этот день"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/masters/{masterId}/available-slots
// Query params: service_ids (required, "1,2"), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	masterID, err := strconv.ParseInt(mux.Vars(r)["masterId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/available-slots - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	serviceIDs, err := handlers.ParseIDList(r.URL.Query().Get("service_ids"))
	if err != nil {
		h.logger.Warn("GET /masters/{id}/available-slots - Invalid service ids: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceIDs)
		return
	}

	date, err := types.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /masters/{id}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		MasterID:   masterID,
		ServiceIDs: serviceIDs,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrInputFormat):
			h.logger.Warn("GET /masters/{id}/available-slots - Invalid params: master_id=%d, error=%v", masterID, err)
			handlers.RespondErrorWithReason(w, http.StatusBadRequest, msgInvalidParams, err.Error())

		case errors.Is(err, scheduling.ErrNotFound):
			h.logger.Warn("GET /masters/{id}/available-slots - Not found: master_id=%d, service_ids=%v", masterID, serviceIDs)
			handlers.RespondErrorWithReason(w, http.StatusNotFound, msgNotFound, err.Error())

		case errors.Is(err, scheduling.ErrQualification):
			h.logger.Warn("GET /masters/{id}/available-slots - Not qualified: master_id=%d, service_ids=%v", masterID, serviceIDs)
			handlers.RespondUnprocessable(w, msgNotQualified)

		case errors.Is(err, getAvailableSlots.ErrDateInPast):
			h.logger.Warn("GET /masters/{id}/available-slots - Date in past: master_id=%d, date=%s", masterID, date)
			handlers.RespondUnprocessable(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrMasterDayOff):
			h.logger.Warn("GET /masters/{id}/available-slots - Day off: master_id=%d, date=%s", masterID, date)
			handlers.RespondUnprocessable(w, msgDayOff)

		default:
			h.logger.Error("GET /masters/{id}/available-slots - Failed to get slots: master_id=%d, error=%v", masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /masters/{id}/available-slots - Slots retrieved successfully: master_id=%d, date=%s, slots_count=%d",
		masterID, date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
