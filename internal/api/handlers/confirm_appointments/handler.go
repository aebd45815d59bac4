package confirm_appointments

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SalonBookingService/internal/service/appointments"
	"github.com/m04kA/SalonBookingService/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "список ID записей не должен быть пустым"
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

// HandleConfirm POST /api/v1/appointments/confirm
// Подтверждаются только записи в статусе pending
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /appointments/confirm", h.service.Confirm)
}

// HandleReject POST /api/v1/appointments/reject
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /appointments/reject", h.service.Reject)
}

type transition func(ctx context.Context, req *models.ConfirmationRequest) (*models.ConfirmationResponse, error)

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, route string, apply transition) {
	userID, _ := middleware.GetUserID(r.Context())

	var req models.ConfirmationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := apply(r.Context(), &req)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("%s - Invalid data: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}
		h.logger.Error("%s - Failed: ids=%v, error=%v", route, req.IDs, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("%s - Done: user_id=%d, requested=%d, affected=%d", route, userID, len(req.IDs), result.Affected)
	handlers.RespondJSON(w, http.StatusOK, result)
}
