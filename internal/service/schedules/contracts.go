package schedules

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория рабочих расписаний
type ScheduleRepository interface {
	Create(ctx context.Context, s *domain.WorkSchedule) (*domain.WorkSchedule, error)
	Update(ctx context.Context, s *domain.WorkSchedule) (*domain.WorkSchedule, error)
	Delete(ctx context.Context, masterID int64, weekday int) error
	HoursFor(ctx context.Context, masterID int64, weekday int) (*domain.WorkSchedule, error)
	ListByMaster(ctx context.Context, masterID int64) ([]*domain.WorkSchedule, error)
}

// MasterRepository интерфейс чтения мастеров
type MasterRepository interface {
	GetMasterByID(ctx context.Context, id int64) (*domain.Master, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
