package create_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_appointment: invalid input data: %w", scheduling.ErrInputFormat)

	// ErrConcurrencyConflict транзакция проиграла гонку за слот, нужно заново искать слоты
	ErrConcurrencyConflict = fmt.Errorf("create_appointment: slot was taken concurrently: %w", scheduling.ErrConcurrencyConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
