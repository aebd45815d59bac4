package scheduling

import (
	"context"
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// ScheduleStore рабочие часы мастеров
type ScheduleStore interface {
	// HoursFor возвращает nil без ошибки, если мастер не работает в этот день
	HoursFor(ctx context.Context, masterID int64, weekday int) (*domain.WorkSchedule, error)
	HoursForAny(ctx context.Context, masterIDs []int64, weekday int) ([]*domain.WorkSchedule, error)
}

// AppointmentReader записи мастера за календарный день (в часовом поясе loc)
type AppointmentReader interface {
	GetByMasterAndDate(ctx context.Context, masterID int64, date types.Date, loc *time.Location) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
