package domain

import (
	"time"

	"github.com/m04kA/SalonBookingService/pkg/types"
)

// Confirmation статус подтверждения записи
type Confirmation string

const (
	ConfirmationPending   Confirmation = "pending"
	ConfirmationConfirmed Confirmation = "confirmed"
	ConfirmationRejected  Confirmation = "rejected"
)

// IsValid известное ли значение
func (c Confirmation) IsValid() bool {
	switch c {
	case ConfirmationPending, ConfirmationConfirmed, ConfirmationRejected:
		return true
	}
	return false
}

// CanTransitionTo разрешены только pending -> confirmed и pending -> rejected
func (c Confirmation) CanTransitionTo(next Confirmation) bool {
	return c == ConfirmationPending && (next == ConfirmationConfirmed || next == ConfirmationRejected)
}

// Appointment запись клиента к мастеру
type Appointment struct {
	ID         int64
	ClientID   *int64
	ClientName string
	Phone      string
	ServiceIDs []int64
	MasterID   int64

	// Либо DateTime, либо только Date (длинные услуги без времени)
	DateTime *time.Time
	Date     *types.Date

	// Сумма длительностей привязанных услуг, считается при чтении
	DurationMinutes int
	ServicesCount   int

	Confirmation    Confirmation
	PaymentURL      *string
	ReminderMinutes int
	Prepayment      float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasTime назначено ли время
func (a *Appointment) HasTime() bool {
	return a.DateTime != nil
}

// Busy интервал занятости мастера, ok=false если записи нельзя приписать занятость
// (нет времени или нет услуг)
func (a *Appointment) Busy(cfg SchedulingConfig) (Interval, bool) {
	if a.DateTime == nil || a.ServicesCount == 0 {
		return Interval{}, false
	}
	return BusyInterval(*a.DateTime, time.Duration(a.DurationMinutes)*time.Minute, cfg), true
}

// IsPending ожидает ли подтверждения
func (a *Appointment) IsPending() bool {
	return a.Confirmation == ConfirmationPending
}

// Client клиент салона, ищется по телефону
type Client struct {
	ID        int64
	Name      string
	Phone     string
	CreatedAt time.Time
}

// PendingFilter пагинация списка неподтверждённых записей
type PendingFilter struct {
	Limit  int
	Offset int
}

// PeriodFilter записи за дни [From, To), мастер и услуга необязательны
type PeriodFilter struct {
	From      types.Date
	To        types.Date
	MasterID  *int64
	ServiceID *int64
}
