package get_available_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SalonBookingService/internal/service/scheduling"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("get_available_slots: invalid input data: %w", scheduling.ErrInputFormat)

	// ErrDateInPast возвращается, когда запрошенная дата уже прошла
	ErrDateInPast = fmt.Errorf("get_available_slots: date is in the past: %w", scheduling.ErrScheduleConflict)

	// ErrMasterDayOff возвращается, когда мастер не работает в этот день недели
	ErrMasterDayOff = fmt.Errorf("get_available_slots: master does not work this day: %w", scheduling.ErrScheduleConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
