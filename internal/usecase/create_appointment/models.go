package create_appointment

import (
	"time"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// Имя клиента, если оно не передано
const defaultClientName = "Неизвестный"

// Результаты записи для метрик
const (
	resultCreated  = "created"
	resultRejected = "rejected"
	resultConflict = "conflict"
	resultError    = "error"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID        *int64      // ID существующего клиента (опционально)
	ClientName      string      // Имя клиента, если ClientID не указан
	Phone           string      // Телефон, по нему ищется или создаётся клиент
	ServiceIDs      []int64     // ID услуг
	MasterID        int64       // ID мастера
	DateTime        *time.Time  // Начало записи
	Date            *types.Date // Только дата (длинные услуги)
	ReminderMinutes int         // 0 означает значение по умолчанию
	Prepayment      float64     // Сумма предоплаты
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	ClientID        *int64
	ClientName      string
	Phone           string
	MasterID        int64
	MasterName      string
	ServiceIDs      []int64
	DateTime        *time.Time
	Date            *types.Date
	DurationMinutes int
	TotalPrice      float64
	Confirmation    domain.Confirmation
	ReminderMinutes int
	Prepayment      float64
	CreatedAt       time.Time
}
