package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// Resolver поиск услуг и мастера по id
type Resolver interface {
	Services(ctx context.Context, ids []int64) (domain.ServiceSet, error)
	Master(ctx context.Context, id int64, services domain.ServiceSet) (*domain.Master, error)
}

// ScheduleStore рабочие часы мастеров
type ScheduleStore interface {
	HoursFor(ctx context.Context, masterID int64, weekday int) (*domain.WorkSchedule, error)
}

// SlotGenerator расчёт свободных слотов мастера
type SlotGenerator interface {
	Generate(ctx context.Context, masterID int64, services domain.ServiceSet, date types.Date, now time.Time) ([]types.TimeString, error)
	Location() *time.Location
}

// Metrics счётчики запросов слотов
type Metrics interface {
	ObserveSlotQuery(kind string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
