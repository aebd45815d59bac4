package get_masters_with_slots

import (
	getMastersWithSlots "github.com/m04kA/SalonBookingService/internal/usecase/get_masters_with_slots"
)

// MastersWithSlotsResponse HTTP response model
type MastersWithSlotsResponse struct {
	Date          string           `json:"date"`
	IsLongService bool             `json:"isLongService"`
	Masters       []MasterResponse `json:"masters"`
}

// MasterResponse мастер и его свободные слоты
type MasterResponse struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMastersWithSlots.Response) *MastersWithSlotsResponse {
	masters := make([]MasterResponse, 0, len(resp.Masters))
	for _, m := range resp.Masters {
		slots := make([]string, 0, len(m.Slots))
		for _, s := range m.Slots {
			slots = append(slots, s.String())
		}
		masters = append(masters, MasterResponse{ID: m.ID, Name: m.Name, Slots: slots})
	}
	return &MastersWithSlotsResponse{
		Date:          resp.Date.String(),
		IsLongService: resp.IsLongService,
		Masters:       masters,
	}
}
