package get_weekly_board

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	WeeklyBoard(ctx context.Context, req *models.WeeklyRequest) (*models.WeeklyBoardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
