package list_pending_appointments

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	ListPending(ctx context.Context, req *models.PendingRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
