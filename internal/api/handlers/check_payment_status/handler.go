package check_payment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/api/middleware"
	checkPaymentStatus "github.com/m04kA/SalonBookingService/internal/usecase/check_payment_status"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgPaymentUnavailable   = "платёжная система недоступна, повторите позже"
)

type Handler struct {
	useCase CheckPaymentStatusUseCase
	logger  Logger
}

func NewHandler(useCase CheckPaymentStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/payment-status
// Опрашивает FreedomPay и подтверждает оплаченную запись
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		h.logger.Warn("POST /appointments/{id}/payment-status - Invalid appointment ID: %q", mux.Vars(r)["appointmentId"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &checkPaymentStatus.Request{AppointmentID: appointmentID})
	if err != nil {
		switch {
		case errors.Is(err, checkPaymentStatus.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/payment-status - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		case errors.Is(err, checkPaymentStatus.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/payment-status - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkPaymentStatus.ErrPaymentUnavailable):
			h.logger.Warn("POST /appointments/{id}/payment-status - Provider failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentUnavailable)

		default:
			h.logger.Error("POST /appointments/{id}/payment-status - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/payment-status - Checked: appointment_id=%d, user_id=%d, status=%s, confirmed=%t",
		appointmentID, userID, result.PaymentStatus, result.Confirmed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
