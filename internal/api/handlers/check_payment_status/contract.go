package check_payment_status

import (
	"context"

	checkPaymentStatus "github.com/m04kA/SalonBookingService/internal/usecase/check_payment_status"
)

type CheckPaymentStatusUseCase interface {
	Execute(ctx context.Context, req *checkPaymentStatus.Request) (*checkPaymentStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
