package create_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
	createAppointment "github.com/m04kA/SalonBookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат dateTime, ожидается RFC3339 или YYYY-MM-DDTHH:MM"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidData        = "некорректные данные записи"
	msgNotFound           = "мастер или услуга не найдены"
	msgNotQualified       = "мастер не выполняет выбранные услуги"
	msgRejected           = "запись на это время невозможна"
	msgSlotTaken          = "выбранное время только что заняли, выберите другой слот"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(h.loc)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidDateTime) {
			handlers.RespondBadRequest(w, msgInvalidDateTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var ve *scheduling.ValidationError
		switch {
		case errors.As(err, &ve):
			h.logger.Warn("POST /appointments - Rejected by rule %s: master_id=%d, reason=%s", ve.Rule, req.MasterID, ve.Reason)
			handlers.RespondRejection(w, msgRejected, ve)

		case errors.Is(err, createAppointment.ErrConcurrencyConflict):
			h.logger.Warn("POST /appointments - Concurrent booking: master_id=%d", req.MasterID)
			handlers.RespondRetrySlotSearch(w, msgSlotTaken)

		case errors.Is(err, scheduling.ErrInputFormat):
			h.logger.Warn("POST /appointments - Invalid data: %v", err)
			handlers.RespondErrorWithReason(w, http.StatusBadRequest, msgInvalidData, err.Error())

		case errors.Is(err, scheduling.ErrNotFound):
			h.logger.Warn("POST /appointments - Not found: master_id=%d, service_ids=%v", req.MasterID, req.ServiceIDs)
			handlers.RespondErrorWithReason(w, http.StatusNotFound, msgNotFound, err.Error())

		case errors.Is(err, scheduling.ErrQualification):
			h.logger.Warn("POST /appointments - Not qualified: master_id=%d, service_ids=%v", req.MasterID, req.ServiceIDs)
			handlers.RespondUnprocessable(w, msgNotQualified)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: master_id=%d, error=%v", req.MasterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, master_id=%d",
		result.ID, result.MasterID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
