package get_work_schedule

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/schedules/models"
)

type ScheduleService interface {
	GetWeek(ctx context.Context, masterID int64) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
