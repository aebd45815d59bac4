package get_masters_with_slots

import (
	"context"

	getMastersWithSlots "github.com/m04kA/SalonBookingService/internal/usecase/get_masters_with_slots"
)

type GetMastersWithSlotsUseCase interface {
	Execute(ctx context.Context, req *getMastersWithSlots.Request) (*getMastersWithSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
