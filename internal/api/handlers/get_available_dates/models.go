package get_available_dates

import (
	getAvailableDates "github.com/m04kA/SalonBookingService/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	Year           int      `json:"year"`
	Month          int      `json:"month"`
	IsLongService  bool     `json:"isLongService"`
	AvailableDates []string `json:"availableDates"` // ["2026-10-19"]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]string, 0, len(resp.AvailableDates))
	for _, d := range resp.AvailableDates {
		dates = append(dates, d.String())
	}
	return &AvailableDatesResponse{
		Year:           resp.Year,
		Month:          int(resp.Month),
		IsLongService:  resp.IsLongService,
		AvailableDates: dates,
	}
}
