package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
	getAvailableDates "github.com/m04kA/SalonBookingService/internal/usecase/get_available_dates"
)

const (
	msgInvalidServiceIDs = "некорректный список услуг, ожидается service_ids=1,2"
	msgInvalidYear       = "некорректный год"
	msgInvalidMonth      = "некорректный месяц, ожидается число от 1 до 12"
	msgInvalidParams     = "некорректные параметры запроса"
	msgServiceNotFound   = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/available-dates
// Query params: service_ids (required), year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceIDs, err := handlers.ParseIDList(query.Get("service_ids"))
	if err != nil {
		h.logger.Warn("GET /services/available-dates - Invalid service ids: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceIDs)
		return
	}

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /services/available-dates - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /services/available-dates - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{
		ServiceIDs: serviceIDs,
		Year:       year,
		Month:      time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrInputFormat):
			h.logger.Warn("GET /services/available-dates - Invalid params: %v", err)
			handlers.RespondErrorWithReason(w, http.StatusBadRequest, msgInvalidParams, err.Error())

		case errors.Is(err, scheduling.ErrNotFound):
			h.logger.Warn("GET /services/available-dates - Service not found: service_ids=%v", serviceIDs)
			handlers.RespondErrorWithReason(w, http.StatusNotFound, msgServiceNotFound, err.Error())

		default:
			h.logger.Error("GET /services/available-dates - Failed to get dates: service_ids=%v, error=%v", serviceIDs, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/available-dates - Dates retrieved successfully: %d-%02d, dates_count=%d",
		year, month, len(result.AvailableDates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
