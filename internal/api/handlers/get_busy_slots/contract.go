package get_busy_slots

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/appointments/models"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

type AppointmentService interface {
	BusySlots(ctx context.Context, masterID int64, date types.Date) (*models.BusySlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
