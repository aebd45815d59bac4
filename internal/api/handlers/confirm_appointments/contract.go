package confirm_appointments

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	Confirm(ctx context.Context, req *models.ConfirmationRequest) (*models.ConfirmationResponse, error)
	Reject(ctx context.Context, req *models.ConfirmationRequest) (*models.ConfirmationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
