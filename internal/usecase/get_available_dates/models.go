package get_available_dates

import (
	"time"

	"github.com/m04kA/SalonBookingService/pkg/types"
)

// Request модель запроса свободных дней месяца
type Request struct {
	ServiceIDs []int64
	Year       int
	Month      time.Month
}

// Response модель ответа
type Response struct {
	Year           int
	Month          time.Month
	IsLongService  bool
	AvailableDates []types.Date // По возрастанию, не раньше сегодняшнего дня
}
