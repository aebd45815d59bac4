package get_masters_with_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("get_masters_with_slots: invalid input data: %w", scheduling.ErrInputFormat)

	// ErrDateInPast возвращается, когда запрошенная дата уже прошла
	ErrDateInPast = fmt.Errorf("get_masters_with_slots: date is in the past: %w", scheduling.ErrScheduleConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_masters_with_slots: internal error")
)
