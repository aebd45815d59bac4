package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/internal/integrations/freedompay"
	"github.com/m04kA/SalonBookingService/internal/integrations/telegram"
	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// Resolver поиск услуг и мастера по id
type Resolver interface {
	Services(ctx context.Context, ids []int64) (domain.ServiceSet, error)
	Master(ctx context.Context, id int64, services domain.ServiceSet) (*domain.Master, error)
}

// Validator цепочка правил записи
type Validator interface {
	Validate(ctx context.Context, d *scheduling.Draft, now time.Time) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	LockMasterDay(ctx context.Context, masterID int64, date types.Date) error
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	SetPaymentURL(ctx context.Context, id int64, url string) error
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetOrCreateByPhone(ctx context.Context, name, phone string) (*domain.Client, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier уведомление операторов о новой записи
type Notifier interface {
	NotifyAppointment(ctx context.Context, msg *telegram.AppointmentMessage) error
}

// PaymentProvider создание ссылки на оплату
type PaymentProvider interface {
	InitPayment(ctx context.Context, req *freedompay.PaymentRequest) (string, error)
}

// Metrics счётчики результатов записи
type Metrics interface {
	ObserveBooking(result string)
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
