package get_available_dates

import (
	"errors"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("get_available_dates: invalid input data: %w", scheduling.ErrInputFormat)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_dates: internal error")
)
