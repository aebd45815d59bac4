package set_work_schedule

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/schedules/models"
)

type ScheduleService interface {
	Set(ctx context.Context, req *models.SetScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
