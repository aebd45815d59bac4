package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByMasterAndDate(ctx context.Context, masterID int64, date types.Date, loc *time.Location) ([]*domain.Appointment, error)
	ListByPeriod(ctx context.Context, filter domain.PeriodFilter, loc *time.Location) ([]*domain.Appointment, error)
	ListPending(ctx context.Context, filter domain.PendingFilter) ([]*domain.Appointment, error)
	CountPending(ctx context.Context) (int, error)
	UpdateConfirmation(ctx context.Context, ids []int64, to domain.Confirmation) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
