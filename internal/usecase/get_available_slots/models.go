package get_available_slots

import (
	"github.com/m04kA/SalonBookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	MasterID   int64      // ID мастера
	ServiceIDs []int64    // ID услуг (набор, порядок не важен)
	Date       types.Date // Дата в часовом поясе салона
}

// Response модель ответа со списком доступных слотов
type Response struct {
	MasterID        int64
	Date            types.Date
	DurationMinutes int                // Суммарная длительность услуг
	IsLongService   bool               // Длинная услуга записывается на дату, слотов нет
	Slots           []types.TimeString // Начала свободных слотов по возрастанию
}
