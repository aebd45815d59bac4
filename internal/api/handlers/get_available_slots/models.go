package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SalonBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	MasterID        int64    `json:"masterId"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	IsLongService   bool     `json:"isLongService"`
	Slots           []string `json:"slots"` // ["09:00", "11:00"]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}
	return &AvailableSlotsResponse{
		MasterID:        resp.MasterID,
		Date:            resp.Date.String(),
		DurationMinutes: resp.DurationMinutes,
		IsLongService:   resp.IsLongService,
		Slots:           slots,
	}
}
