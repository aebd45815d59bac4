package get_master_day

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/appointments/models"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

type AppointmentService interface {
	MasterDay(ctx context.Context, masterID int64, date types.Date) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
