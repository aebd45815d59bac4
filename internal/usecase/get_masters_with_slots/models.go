package get_masters_with_slots

import "github.com/m04kA/SalonBookingService/pkg/types"

// Request модель запроса мастеров со свободным временем
type Request struct {
	ServiceIDs []int64
	Date       types.Date
}

// Response модель ответа
type Response struct {
	Date          types.Date
	IsLongService bool
	Masters       []Master // Пустой список, если свободных мастеров нет
}

// Master мастер и его свободные слоты
type Master struct {
	ID    int64
	Name  string
	Slots []types.TimeString
}
