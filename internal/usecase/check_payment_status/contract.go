package check_payment_status

import (
	"context"

	"github.com/m04kA/SalonBookingService/internal/service/appointments/models"
)

// AppointmentService чтение и подтверждение записей
type AppointmentService interface {
	GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error)
	Confirm(ctx context.Context, req *models.ConfirmationRequest) (*models.ConfirmationResponse, error)
}

// PaymentStatusProvider статус платежа у платёжной системы, orderID = ID записи
type PaymentStatusProvider interface {
	GetPaymentStatus(ctx context.Context, orderID int64) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
