package get_masters_with_slots

import (
	"context"
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// Resolver поиск услуг и подходящих мастеров
type Resolver interface {
	Services(ctx context.Context, ids []int64) (domain.ServiceSet, error)
	QualifiedMasters(ctx context.Context, services domain.ServiceSet) ([]*domain.Master, error)
}

// Aggregator доступность по нескольким мастерам
type Aggregator interface {
	MastersWithSlots(ctx context.Context, masters []*domain.Master, services domain.ServiceSet, date types.Date, now time.Time) ([]scheduling.MasterSlots, error)
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
